package evaluator

import (
	"github.com/wisplang/wisp/internal/diagnostics"
	"github.com/wisplang/wisp/internal/token"
)

// fail builds an evaluator-phase diagnostic. Every special form and
// primitive in this package raises errors through this single helper.
// Parsed values carry no source position, so every evaluator diagnostic
// renders without a line:col prefix.
func fail(kind diagnostics.Kind, format string, args ...interface{}) error {
	return diagnostics.Newf(diagnostics.PhaseEvaluator, kind, token.Token{}, format, args...)
}
