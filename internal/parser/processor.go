package parser

import (
	"github.com/wisplang/wisp/internal/arena"
	"github.com/wisplang/wisp/internal/diagnostics"
	"github.com/wisplang/wisp/internal/pipeline"
)

// Processor is the parser's pipeline stage: it drains ctx.TokenStream into
// ctx.Forms, or records the first syntax error on ctx.Err.
type Processor struct {
	Arena *arena.Arena
}

// NewProcessor constructs a parser Processor that allocates assembled
// lists against a.
func NewProcessor(a *arena.Arena) *Processor {
	return &Processor{Arena: a}
}

func (pp *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	p := New(ctx.TokenStream, pp.Arena)
	forms, err := p.ParseForms()
	if err != nil {
		ctx.Err = err.(*diagnostics.DiagnosticError)
		return ctx
	}
	ctx.Forms = forms
	return ctx
}

var _ pipeline.Processor = (*Processor)(nil)
