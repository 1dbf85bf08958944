package lexer

import (
	"github.com/wisplang/wisp/internal/diagnostics"
	"github.com/wisplang/wisp/internal/pipeline"
	"github.com/wisplang/wisp/internal/token"
)

// sliceStream serves pipeline.TokenStream out of a pre-scanned slice. The
// tokenizer's output is a complete list of tokens, not a lazy stream, so
// there is nothing to pull on demand once Process has run.
type sliceStream struct {
	tokens []token.Token
	pos    int
}

func (s *sliceStream) Next() token.Token {
	if s.pos >= len(s.tokens) {
		return token.Token{Kind: token.EOF}
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

func (s *sliceStream) Peek(n int) []token.Token {
	end := s.pos + n
	if end > len(s.tokens) {
		end = len(s.tokens)
	}
	if s.pos > end {
		return nil
	}
	return s.tokens[s.pos:end]
}

var _ pipeline.TokenStream = (*sliceStream)(nil)

// LexerProcessor is the tokenizer's pipeline stage: it scans ctx.Source in
// full and either populates ctx.TokenStream or records the first lexical
// error on ctx.Err.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	l := New(ctx.Source)
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			ctx.Err = err.(*diagnostics.DiagnosticError)
			return ctx
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	ctx.TokenStream = &sliceStream{tokens: tokens}
	return ctx
}

var _ pipeline.Processor = (*LexerProcessor)(nil)
