// Package parser assembles the tokenizer's output into top-level forms
// using a shift/reduce stack over exactly two structural tokens, Open and
// Close.
package parser

import (
	"github.com/wisplang/wisp/internal/arena"
	"github.com/wisplang/wisp/internal/config"
	"github.com/wisplang/wisp/internal/diagnostics"
	"github.com/wisplang/wisp/internal/pipeline"
	"github.com/wisplang/wisp/internal/symbols"
	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/value"
)

// Parser holds the shift/reduce stack and the token stream it is draining.
//
// quoteStack tracks, per currently-open paren depth, how many leading
// quote markers preceded that Open — e.g. the `2` in `''(a b)`'s outer
// group. pendingQuotes accumulates quote markers seen since the last
// pushed value, applied to whatever is pushed next (an atom, or the list
// a Close assembles). This is how `'x` desugars to `(quote x)` on top of
// the bare Open/Close shift-reduce below.
type Parser struct {
	stream        pipeline.TokenStream
	arena         *arena.Arena
	symbols       *symbols.Table
	stack         []value.Value
	quoteStack    []int
	pendingQuotes int
	depth         int
}

// New constructs a Parser over stream, allocating assembled lists against
// a and interning every symbol it reads through its own symbol table.
func New(stream pipeline.TokenStream, a *arena.Arena) *Parser {
	return &Parser{stream: stream, arena: a, symbols: symbols.NewTable(a)}
}

// tokenToValue converts one lexical token into the Value it denotes. Open
// and Close tokens become the transient Open/Close markers that only ever
// live on the parse stack; every other token becomes the literal or symbol
// it lexes to. Symbols are interned so that repeated occurrences of the
// same name share one *value.Symbol, making symbol equality a pointer
// comparison.
func (p *Parser) tokenToValue(tok token.Token) value.Value {
	switch tok.Kind {
	case token.OPEN:
		return &value.Open{}
	case token.CLOSE:
		return &value.Close{}
	case token.INTEGER:
		return value.NewInteger(p.arena, tok.Literal.(int64))
	case token.DOUBLE:
		return value.NewDouble(p.arena, tok.Literal.(float64))
	case token.STRING:
		return value.NewString(p.arena, tok.Literal.(string))
	case token.BOOL:
		return value.NewBool(p.arena, tok.Literal.(bool))
	case token.SYMBOL:
		return p.symbols.Intern(tok.Lexeme)
	default:
		return nil
	}
}

// quoteWrap builds (quote v).
func (p *Parser) quoteWrap(v value.Value) value.Value {
	quoteSym := p.symbols.Intern(config.FormQuote)
	return value.NewPair(p.arena, quoteSym, value.NewPair(p.arena, v, value.TheNull))
}

// ParseForms drains the token stream and returns the top-level forms:
// push Open and literal/symbol tokens; on Close, pop back to the matching
// Open, assemble a proper list in original order, and push that list in
// the Open's place.
func (p *Parser) ParseForms() ([]value.Value, error) {
	for {
		tok := p.stream.Next()
		if tok.Kind == token.EOF {
			break
		}
		switch tok.Kind {
		case token.QUOTE:
			p.pendingQuotes++
			continue
		case token.CLOSE:
			if p.depth == 0 {
				return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.Syntax, tok,
					"too many close parentheses")
			}
			p.reduce()
			continue
		case token.OPEN:
			p.depth++
			p.quoteStack = append(p.quoteStack, p.pendingQuotes)
			p.pendingQuotes = 0
			p.stack = append(p.stack, p.tokenToValue(tok))
			continue
		}
		v := p.tokenToValue(tok)
		for i := 0; i < p.pendingQuotes; i++ {
			v = p.quoteWrap(v)
		}
		p.pendingQuotes = 0
		p.stack = append(p.stack, v)
	}
	if p.depth != 0 {
		return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.Syntax, token.Token{},
			"not enough close parentheses")
	}
	forms := make([]value.Value, len(p.stack))
	copy(forms, p.stack)
	return forms, nil
}

// reduce pops values off the stack back to (and including) the nearest
// Open marker, assembles them into a proper list in their original order,
// and pushes that list back in the Open's place, wrapped in as many
// (quote ...) forms as preceded that Open.
func (p *Parser) reduce() {
	var items []value.Value
	for {
		n := len(p.stack)
		top := p.stack[n-1]
		p.stack = p.stack[:n-1]
		if _, isOpen := top.(*value.Open); isOpen {
			break
		}
		items = append(items, top)
	}
	// items were popped innermost-last-pushed first; reverse to restore
	// original left-to-right order before consing.
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	var list value.Value = value.TheNull
	for i := len(items) - 1; i >= 0; i-- {
		list = value.NewPair(p.arena, items[i], list)
	}
	p.depth--

	n := len(p.quoteStack)
	quoteCount := p.quoteStack[n-1]
	p.quoteStack = p.quoteStack[:n-1]
	for i := 0; i < quoteCount; i++ {
		list = p.quoteWrap(list)
	}
	p.stack = append(p.stack, list)
}
