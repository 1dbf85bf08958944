package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wisplang/wisp/internal/token"
)

func TestDiagnosticError_RendersWithPosition(t *testing.T) {
	err := New(PhaseLexer, Lexical, token.Token{Line: 3, Column: 7}, "unterminated string literal")
	assert.Equal(t, "3:7: lexical error: unterminated string literal", err.Error())
}

func TestDiagnosticError_RendersWithoutPosition(t *testing.T) {
	err := New(PhaseEvaluator, UnboundSymbol, token.Token{}, "foo")
	assert.Equal(t, "unbound symbol: foo", err.Error())
}

func TestExitCodeFor_AllKindsDistinct(t *testing.T) {
	kinds := []Kind{Lexical, Syntax, BadFormShape, BadFormBinding, BadLambdaParams,
		UnboundSymbol, NotApplicable, WrongArity, WrongType, DivideByZero}

	seen := make(map[int]bool)
	for _, k := range kinds {
		code := ExitCodeFor(k)
		assert.False(t, seen[code], "duplicate exit code %d for %s", code, k)
		assert.NotZero(t, code)
		seen[code] = true
	}
}
