// Package diagnostics implements the interpreter's error taxonomy: one
// coded kind per row of the error-handling table, each rendering to the
// single diagnostic line the REPL prints before terminating.
package diagnostics

import (
	"fmt"

	"github.com/wisplang/wisp/internal/token"
)

// Phase identifies which subsystem raised a DiagnosticError.
type Phase string

const (
	PhaseLexer     Phase = "lexer"
	PhaseParser    Phase = "parser"
	PhaseEvaluator Phase = "evaluator"
)

// Kind is one of the ten abstract error kinds the interpreter can raise.
type Kind string

const (
	Lexical         Kind = "Lexical"
	Syntax          Kind = "Syntax"
	BadFormShape    Kind = "BadFormShape"
	BadFormBinding  Kind = "BadFormBinding"
	BadLambdaParams Kind = "BadLambdaParams"
	UnboundSymbol   Kind = "UnboundSymbol"
	NotApplicable   Kind = "NotApplicable"
	WrongArity      Kind = "WrongArity"
	WrongType       Kind = "WrongType"
	DivideByZero    Kind = "DivideByZero"
)

var templates = map[Kind]string{
	Lexical:         "lexical error: %s",
	Syntax:          "syntax error: %s",
	BadFormShape:    "bad form: %s",
	BadFormBinding:  "bad binding target: %s",
	BadLambdaParams: "bad lambda parameter list: %s",
	UnboundSymbol:   "unbound symbol: %s",
	NotApplicable:   "not applicable: %s",
	WrongArity:      "wrong number of arguments: %s",
	WrongType:       "wrong type: %s",
	DivideByZero:    "division by zero: %s",
}

// exitCodes gives every Kind a distinct, stable, documented process exit
// status rather than a single generic nonzero code.
var exitCodes = map[Kind]int{
	Lexical:         1,
	Syntax:          2,
	BadFormShape:    3,
	BadFormBinding:  4,
	BadLambdaParams: 5,
	UnboundSymbol:   6,
	NotApplicable:   7,
	WrongArity:      8,
	WrongType:       9,
	DivideByZero:    10,
}

// ExitCodeFor returns the process exit status associated with kind.
func ExitCodeFor(kind Kind) int {
	if code, ok := exitCodes[kind]; ok {
		return code
	}
	return 1
}

// DiagnosticError is the single error type raised by every subsystem.
// Its Error() string is exactly the short diagnostic line the REPL prints
// to standard output before tearing down the arena.
type DiagnosticError struct {
	Kind    Kind
	Phase   Phase
	Message string
	Token   token.Token
}

func (e *DiagnosticError) Error() string {
	template, ok := templates[e.Kind]
	if !ok {
		return fmt.Sprintf("error: %s", e.Message)
	}
	rendered := fmt.Sprintf(template, e.Message)
	if e.Token.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Token.Line, e.Token.Column, rendered)
	}
	return rendered
}

// New builds a DiagnosticError with a position.
func New(phase Phase, kind Kind, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Kind: kind, Phase: phase, Message: message, Token: tok}
}

// Newf is New with printf-style message formatting.
func Newf(phase Phase, kind Kind, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return New(phase, kind, tok, fmt.Sprintf(format, args...))
}
