package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt      TokenType
	lexeme  string
	hasText bool

	line int
	col  int
}

// NewToken creates a lexical unit that carries no literal text
func NewToken(tt TokenType, line int, col int) Token {
	return Token{
		tt:   tt,
		line: line,
		col:  col,
	}
}

// NewTextToken creates a lexical unit that carries literal text
func NewTextToken(tt TokenType, lexeme string, line int, col int) Token {
	return Token{
		tt:      tt,
		lexeme:  lexeme,
		hasText: true,
		line:    line,
		col:     col,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the literal text of the lexical unit, if any.
func (t Token) Text() string {
	return t.lexeme
}

// HasText returns true if the token carries literal text. Only identifiers,
// integers and undefined characters do.
func (t Token) HasText() bool {
	return t.hasText
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	if !t.hasText {
		return t.tt.String()
	}
	return fmt.Sprintf("%v(%s)", t.tt, t.lexeme)
}
