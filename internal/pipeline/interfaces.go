package pipeline

import "github.com/wisplang/wisp/internal/token"

// Processor is any component that can process a Context and return a
// (possibly the same, possibly modified) Context.
type Processor interface {
	Process(ctx *Context) *Context
}

// TokenStream defines the contract for a buffered token stream, the way
// the parser consumes the tokenizer's output.
type TokenStream interface {
	// Next consumes and returns the next token from the stream.
	Next() token.Token

	// Peek returns the next n tokens without consuming them. If the
	// stream has fewer than n tokens, it returns all remaining tokens.
	Peek(n int) []token.Token
}
