package parser

import (
	"errors"
	"fmt"
)

// ErrQuote indicates an unterminated or misplaced quote.
var ErrQuote = errors.New("malformed quoted field")

// ErrFieldCount indicates a record whose field count differs from the header.
var ErrFieldCount = errors.New("wrong number of fields")

// ErrInvalidDelimiter indicates a delimiter or comment rune that cannot be used.
var ErrInvalidDelimiter = errors.New("invalid delimiter")

// ParseError represents malformed delimited content.
type ParseError struct {
	Line   int // 1-based line where the offending record starts
	Column int // 1-based column, 0 if unknown
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error on line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(line, column int, err error) *ParseError {
	return &ParseError{
		Line:   line,
		Column: column,
		Err:    err,
	}
}
