package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisplang/wisp/internal/arena"
	"github.com/wisplang/wisp/internal/lexer"
	"github.com/wisplang/wisp/internal/pipeline"
	"github.com/wisplang/wisp/internal/value"
)

func parseSource(t *testing.T, src string) []value.Value {
	t.Helper()
	a := arena.New()
	lp := &lexer.LexerProcessor{}
	ctx := lp.Process(pipeline.NewContext(src))
	require.Nil(t, ctx.Err)

	p := New(ctx.TokenStream, a)
	forms, err := p.ParseForms()
	require.NoError(t, err)
	return forms
}

func TestParseForms_FlatList(t *testing.T) {
	forms := parseSource(t, "(+ 1 2)")
	require.Len(t, forms, 1)
	assert.Equal(t, "(+ 1 2)", forms[0].Inspect())
}

func TestParseForms_Nested(t *testing.T) {
	forms := parseSource(t, "(cons 1 (cons 2 (cons 3 '())))")
	require.Len(t, forms, 1)
	assert.Equal(t, "(cons 1 (cons 2 (cons 3 (quote ()))))", forms[0].Inspect())
}

func TestParseForms_MultipleTopLevelForms(t *testing.T) {
	forms := parseSource(t, "(define x 10) (+ x 5)")
	assert.Len(t, forms, 2)
}

func TestParseForms_RoundTrip(t *testing.T) {
	const src = "(let ((x 2) (y 3)) (* x y))"
	forms := parseSource(t, src)
	require.Len(t, forms, 1)

	reparsed := parseSource(t, forms[0].Inspect())
	require.Len(t, reparsed, 1)
	assert.Equal(t, forms[0].Inspect(), reparsed[0].Inspect())
}

func TestParseForms_UnmatchedClose(t *testing.T) {
	a := arena.New()
	lp := &lexer.LexerProcessor{}
	ctx := lp.Process(pipeline.NewContext(")"))
	require.Nil(t, ctx.Err)

	p := New(ctx.TokenStream, a)
	_, err := p.ParseForms()
	assert.Error(t, err)
}

func TestParseForms_UnclosedAtEOF(t *testing.T) {
	a := arena.New()
	lp := &lexer.LexerProcessor{}
	ctx := lp.Process(pipeline.NewContext("(+ 1 2"))
	require.Nil(t, ctx.Err)

	p := New(ctx.TokenStream, a)
	_, err := p.ParseForms()
	assert.Error(t, err)
}
