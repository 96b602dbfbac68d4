package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/xiam/infix/lexer"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrIntegerRange    = errors.New("integer literal out of range")
)

// Error is the point where parsing stopped. Err is one of ErrUnexpectedEOF,
// ErrUnexpectedToken or ErrIntegerRange.
type Error struct {
	Token    lexer.Token
	Expected string
	Err      error
}

func newError(err error, tok lexer.Token, expected string) *Error {
	if err == ErrUnexpectedToken && tok.Is(lexer.TokenEOF) {
		err = ErrUnexpectedEOF
	}
	return &Error{
		Token:    tok,
		Expected: expected,
		Err:      err,
	}
}

func (e *Error) Error() string {
	line, col := e.Token.Pos()
	return fmt.Sprintf("%d:%d: %s", line, col, e.Message())
}

// Message describes the failure without its position
func (e *Error) Message() string {
	msg := e.Err.Error()
	if !e.Token.Is(lexer.TokenEOF) {
		msg = fmt.Sprintf("%s %v", msg, e.Token)
	}
	if e.Expected != "" {
		msg = fmt.Sprintf("%s, expected %s", msg, e.Expected)
	}
	return msg
}

// Pos returns the line and column of the token that stopped the parser
func (e *Error) Pos() (int, int) {
	return e.Token.Pos()
}

// Unwrap returns the sentinel error
func (e *Error) Unwrap() error {
	return e.Err
}

// Cause returns the sentinel error, see github.com/pkg/errors.Cause
func (e *Error) Cause() error {
	return e.Err
}
