package pipeline

import (
	"github.com/wisplang/wisp/internal/diagnostics"
	"github.com/wisplang/wisp/internal/value"
)

// Context holds the data threaded between pipeline stages: source text in,
// a token stream, and finally the parsed top-level forms. Errors are
// non-recoverable, so a Context carries at most one.
type Context struct {
	Source      string
	TokenStream TokenStream
	Forms       []value.Value
	Err         *diagnostics.DiagnosticError
}

// NewContext creates a Context ready for the first pipeline stage.
func NewContext(source string) *Context {
	return &Context{Source: source}
}
