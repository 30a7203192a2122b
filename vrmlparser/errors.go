package vrmlparser

import "fmt"

// ParseError is the base error type for all vrmlparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a lexer-level error (unterminated string, malformed
// number, invalid character).
type LexError struct{ ParseError }

// SyntaxError represents a grammar-level error: a required keyword or
// punctuation token did not match.
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: expected %s, got %s", e.Pos.Line, e.Pos.Column, e.Expected, e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// FieldError represents an unknown field name, an unknown field-type
// identifier, or a field literal that does not match its declared type.
type FieldError struct{ ParseError }

// EventInError represents an eventIn identifier that violates the naming
// rules for eventIn declarations.
type EventInError struct{ ParseError }

// EventOutError represents an eventOut identifier that violates the naming
// rules for eventOut declarations.
type EventOutError struct{ ParseError }

// UndefinedNodeError represents a USE (or ROUTE endpoint) naming a symbol
// absent from the symbol table at that point.
type UndefinedNodeError struct {
	ParseError
	Name string
}

// DepthError is returned when node statements nest beyond the configured
// recursion bound.
type DepthError struct{ ParseError }

// UnexpectedEOFError is returned when the grammar needs another token but the
// input is exhausted.
type UnexpectedEOFError struct{ ParseError }
