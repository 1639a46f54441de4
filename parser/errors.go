package parser

import (
	"errors"
	"fmt"

	tok "github.com/shibukawa/dialectsql/tokenizer"
)

// Sentinel errors. Every ParserError unwraps to one of them.
var (
	ErrExpected        = errors.New("unexpected token")
	ErrNoMatchingValue = errors.New("table option does not have a matching value")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrTokenize        = errors.New("failed to tokenize")
)

// ParserError is a parse failure with the source position it was detected at.
type ParserError struct {
	Message  string
	Position tok.Position
	Err      error
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s at Line: %d, Column: %d", e.Message, e.Position.Line, e.Position.Column)
}

func (e *ParserError) Unwrap() error {
	return e.Err
}

// NewParserError creates a ParserError wrapping the given sentinel.
func NewParserError(sentinel error, pos tok.Position, format string, args ...any) *ParserError {
	return &ParserError{
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
		Err:      sentinel,
	}
}

// Expected reports that what was expected but found was read instead.
func (p *Parser) Expected(what string, found tok.Token) error {
	return NewParserError(ErrExpected, found.Position, "Expected: %s, found: %s", what, found)
}
