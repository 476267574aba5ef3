package rule

import (
	"errors"
	"fmt"
)

// Reasons a rule string can be rejected. A *ParseError unwraps to one of these.
var (
	ErrEmptyRule        = errors.New("empty rule")
	ErrUnexpectedEnd    = errors.New("unexpected end of rule")
	ErrUnexpectedChar   = errors.New("unexpected character")
	ErrUnknownSymbol    = errors.New("symbol not in alphabet")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrDuplicateRead    = errors.New("duplicate read symbol")
	ErrTrailingInput    = errors.New("trailing input after clause")
)

// ParseError describes why a rule string does not match the grammar.
type ParseError struct {
	Input    string // The full rule string
	Clause   int    // 1-based clause number, 0 when the input as a whole is rejected
	Offset   int    // Byte offset of the offending character
	Expected string // What the grammar wanted, if known
	Got      string // What was found, if known
	Err      error  // One of the Err* reasons of this package
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Expected != "" {
		msg = fmt.Sprintf("%s: expected %s, got %s", msg, e.Expected, e.Got)
	} else if e.Got != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Got)
	}
	if e.Clause == 0 {
		return fmt.Sprintf("rule %q: %s", e.Input, msg)
	}
	return fmt.Sprintf("rule %q: clause %d at offset %d: %s", e.Input, e.Clause, e.Offset, msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Code returns a short, stable token for the rejection reason.
func (e *ParseError) Code() string {
	switch e.Err {
	case ErrEmptyRule:
		return "empty"
	case ErrUnexpectedEnd:
		return "unexpected_end"
	case ErrUnexpectedChar:
		return "unexpected_char"
	case ErrUnknownSymbol:
		return "unknown_symbol"
	case ErrInvalidDirection:
		return "invalid_direction"
	case ErrDuplicateRead:
		return "duplicate_read"
	case ErrTrailingInput:
		return "trailing_input"
	}
	return "other"
}

// Code returns the rejection token of err if it is (or wraps) a *ParseError,
// and "other" otherwise.
func Code(err error) string {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Code()
	}
	return "other"
}
