// Package lexer turns program source text into a token stream: a
// byte-at-a-time reader carrying position/readPosition/ch/line/column,
// with readChar and peekChar as the only primitives every token-reading
// method builds on.
package lexer

import (
	"strconv"
	"strings"

	"github.com/wisplang/wisp/internal/diagnostics"
	"github.com/wisplang/wisp/internal/token"
)

const symbolStart = "!$%*/:<=>?~_^&"
const symbolContinueExtra = "+-."

// Lexer scans input one byte at a time. It has no knowledge of the
// parser's stack; its only job is to turn characters into Tokens.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

// New constructs a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.readChar()
		case l.ch == ';':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isSymbolStart(ch byte) bool {
	return isLetter(ch) || strings.IndexByte(symbolStart, ch) >= 0
}

func isSymbolContinue(ch byte) bool {
	return isSymbolStart(ch) || isDigit(ch) || strings.IndexByte(symbolContinueExtra, ch) >= 0
}

// isBlank reports whether ch can legally follow a bare +/- symbol: EOF,
// whitespace, or a delimiter that starts its own token.
func isBlank(ch byte) bool {
	switch ch {
	case 0, ' ', '\t', '\r', '\n', '(', ')', '"':
		return true
	default:
		return false
	}
}

// NextToken scans and returns the next token. It returns an error only
// for lexical failures: unterminated strings, malformed numbers, stray
// '#', and bad symbol starts.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespaceAndComments()

	line, col := l.line, l.column

	switch {
	case l.ch == 0:
		return token.Token{Kind: token.EOF, Line: line, Column: col}, nil
	case l.ch == '(':
		l.readChar()
		return token.Token{Kind: token.OPEN, Lexeme: "(", Line: line, Column: col}, nil
	case l.ch == ')':
		l.readChar()
		return token.Token{Kind: token.CLOSE, Lexeme: ")", Line: line, Column: col}, nil
	case l.ch == '\'':
		l.readChar()
		return token.Token{Kind: token.QUOTE, Lexeme: "'", Line: line, Column: col}, nil
	case l.ch == '"':
		return l.readString(line, col)
	case l.ch == '#':
		return l.readHash(line, col)
	case isDigit(l.ch) || ((l.ch == '+' || l.ch == '-' || l.ch == '.') && isDigit(l.peekChar())):
		return l.readNumber(line, col)
	case l.ch == '+' || l.ch == '-':
		// Bare + or - is a symbol only when immediately followed by a
		// blank: whitespace, EOF, or a delimiter. Anything else (e.g.
		// -x) cannot start a symbol with a -/+.
		ch := l.ch
		l.readChar()
		if !isBlank(l.ch) {
			return token.Token{}, diagnostics.Newf(diagnostics.PhaseLexer, diagnostics.Lexical,
				token.Token{Line: line, Column: col}, "cannot start symbol with %q", ch)
		}
		return token.Token{Kind: token.SYMBOL, Lexeme: string(ch), Line: line, Column: col}, nil
	case isSymbolStart(l.ch):
		return l.readSymbol(line, col)
	default:
		bad := l.ch
		l.readChar()
		return token.Token{}, diagnostics.Newf(diagnostics.PhaseLexer, diagnostics.Lexical,
			token.Token{Line: line, Column: col}, "unexpected character %q", bad)
	}
}

func (l *Lexer) readString(line, col int) (token.Token, error) {
	var b strings.Builder
	b.WriteByte('"')
	l.readChar() // consume opening quote
	for {
		if l.ch == 0 || l.ch == '\n' {
			return token.Token{}, diagnostics.New(diagnostics.PhaseLexer, diagnostics.Lexical,
				token.Token{Line: line, Column: col}, "unterminated string literal")
		}
		if l.ch == '"' {
			b.WriteByte('"')
			l.readChar()
			break
		}
		b.WriteByte(l.ch)
		l.readChar()
	}
	lexeme := b.String()
	return token.Token{Kind: token.STRING, Lexeme: lexeme, Line: line, Column: col, Literal: lexeme[1 : len(lexeme)-1]}, nil
}

func (l *Lexer) readHash(line, col int) (token.Token, error) {
	start := l.position
	l.readChar() // consume '#'
	switch l.ch {
	case 't':
		l.readChar()
		return token.Token{Kind: token.BOOL, Lexeme: l.input[start:l.position], Line: line, Column: col, Literal: true}, nil
	case 'f':
		l.readChar()
		return token.Token{Kind: token.BOOL, Lexeme: l.input[start:l.position], Line: line, Column: col, Literal: false}, nil
	default:
		return token.Token{}, diagnostics.Newf(diagnostics.PhaseLexer, diagnostics.Lexical,
			token.Token{Line: line, Column: col}, "invalid token starting with '#'")
	}
}

func (l *Lexer) readNumber(line, col int) (token.Token, error) {
	start := l.position
	if l.ch == '+' || l.ch == '-' {
		l.readChar()
	}
	dotCount := 0
	for isDigit(l.ch) || l.ch == '.' {
		if l.ch == '.' {
			dotCount++
		}
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	if dotCount >= 2 {
		return token.Token{}, diagnostics.Newf(diagnostics.PhaseLexer, diagnostics.Lexical,
			token.Token{Line: line, Column: col}, "malformed number %q", lexeme)
	}
	if dotCount == 0 {
		v, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return token.Token{}, diagnostics.Newf(diagnostics.PhaseLexer, diagnostics.Lexical,
				token.Token{Line: line, Column: col}, "malformed integer %q", lexeme)
		}
		return token.Token{Kind: token.INTEGER, Lexeme: lexeme, Line: line, Column: col, Literal: v}, nil
	}
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return token.Token{}, diagnostics.Newf(diagnostics.PhaseLexer, diagnostics.Lexical,
			token.Token{Line: line, Column: col}, "malformed number %q", lexeme)
	}
	return token.Token{Kind: token.DOUBLE, Lexeme: lexeme, Line: line, Column: col, Literal: v}, nil
}

func (l *Lexer) readSymbol(line, col int) (token.Token, error) {
	start := l.position
	l.readChar()
	for isSymbolContinue(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{Kind: token.SYMBOL, Lexeme: lexeme, Line: line, Column: col, Literal: lexeme}, nil
}
