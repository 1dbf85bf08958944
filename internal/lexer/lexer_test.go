package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisplang/wisp/internal/token"
)

func scanAll(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New(input)
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestNextToken_ParensAndSymbol(t *testing.T) {
	toks := scanAll(t, "(+ 1 2)")
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{
		token.OPEN, token.SYMBOL, token.INTEGER, token.INTEGER, token.CLOSE, token.EOF,
	}, kinds)
}

func TestNextToken_Numbers(t *testing.T) {
	toks := scanAll(t, "42 3.14 -5 +6 .5")
	require.Len(t, toks, 6)
	assert.Equal(t, token.INTEGER, toks[0].Kind)
	assert.Equal(t, int64(42), toks[0].Literal)
	assert.Equal(t, token.DOUBLE, toks[1].Kind)
	assert.Equal(t, 3.14, toks[1].Literal)
	assert.Equal(t, token.INTEGER, toks[2].Kind)
	assert.Equal(t, int64(-5), toks[2].Literal)
	assert.Equal(t, token.INTEGER, toks[3].Kind)
	assert.Equal(t, int64(6), toks[3].Literal)
	assert.Equal(t, token.DOUBLE, toks[4].Kind)
	assert.Equal(t, 0.5, toks[4].Literal)
}

func TestNextToken_TwoDotsIsError(t *testing.T) {
	l := New("1.2.3")
	_, err := l.NextToken()
	assert.Error(t, err)
}

func TestNextToken_Booleans(t *testing.T) {
	toks := scanAll(t, "#t #f")
	require.Len(t, toks, 3)
	assert.Equal(t, true, toks[0].Literal)
	assert.Equal(t, false, toks[1].Literal)
}

func TestNextToken_BadHash(t *testing.T) {
	l := New("#z")
	_, err := l.NextToken()
	assert.Error(t, err)
}

func TestNextToken_BareSignIsSymbol(t *testing.T) {
	toks := scanAll(t, "+ - (+)")
	assert.Equal(t, token.SYMBOL, toks[0].Kind)
	assert.Equal(t, "+", toks[0].Lexeme)
	assert.Equal(t, token.SYMBOL, toks[1].Kind)
	assert.Equal(t, "-", toks[1].Lexeme)
	assert.Equal(t, token.OPEN, toks[2].Kind)
	assert.Equal(t, token.SYMBOL, toks[3].Kind)
	assert.Equal(t, "+", toks[3].Lexeme)
	assert.Equal(t, token.CLOSE, toks[4].Kind)
}

func TestNextToken_SignFollowedByLetterIsError(t *testing.T) {
	l := New("+foo")
	_, err := l.NextToken()
	assert.Error(t, err)
}

func TestNextToken_StringRetainsQuotes(t *testing.T) {
	toks := scanAll(t, `"hello"`)
	assert.Equal(t, `"hello"`, toks[0].Lexeme)
	assert.Equal(t, "hello", toks[0].Literal)
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New(`"oops`)
	_, err := l.NextToken()
	assert.Error(t, err)
}

func TestNextToken_CommentsAndWhitespaceSkipped(t *testing.T) {
	toks := scanAll(t, "; a comment\n  42 ; trailing\n")
	require.Len(t, toks, 2)
	assert.Equal(t, token.INTEGER, toks[0].Kind)
	assert.Equal(t, token.EOF, toks[1].Kind)
}

func TestNextToken_SymbolCharset(t *testing.T) {
	toks := scanAll(t, "zero? null? set! let* <= >= fact-helper")
	for _, tok := range toks[:len(toks)-1] {
		assert.Equal(t, token.SYMBOL, tok.Kind)
	}
}
