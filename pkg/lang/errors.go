package lang

import "fmt"

// ErrorKind is the closed taxonomy of compilation failures.
type ErrorKind int

const (
	// InvalidCharacter marks a character outside the language's alphabet.
	InvalidCharacter ErrorKind = iota
	// UnrecognizedKeyword marks an identifier outside the fixed keyword set.
	UnrecognizedKeyword
	// InvalidNumber marks an unsigned number that failed to parse.
	InvalidNumber
	// UnexpectedEOF marks input ending in the middle of a construct.
	UnexpectedEOF
	// SyntaxError marks a token mismatch; Expected and Actual are set.
	SyntaxError
	// InvalidShape marks an unknown entity shape.
	InvalidShape
	// InvalidPosition marks a shape placed with an anchor mode it does not
	// support.
	InvalidPosition
	// NoGridDimensions marks a program missing its grid declaration.
	NoGridDimensions
	// OutOfBounds marks a point outside the declared grid.
	OutOfBounds
	// InvalidOrientation marks a line along something other than
	// left, top, right or bottom.
	InvalidOrientation
)

// Position is a 1-based line/column location in the source text.
type Position struct {
	Line int
	Col  int
}

// Error is the single diagnostic type shared by the lexer, parser and
// generator. Every error carries the position of the offending token or
// declaration. Compilation is first-failure-wins: the first Error aborts
// the stage that produced it and no partial output survives.
type Error struct {
	Kind ErrorKind
	Pos  Position

	// Expected and Actual describe the token mismatch for SyntaxError.
	Expected TokenKind
	Actual   TokenKind
}

// NewError creates an Error of the given kind at pos.
func NewError(kind ErrorKind, pos Position) *Error {
	return &Error{Kind: kind, Pos: pos}
}

// Error formats the diagnostic as a single line, e.g.
// "[3,7] ERROR: Out-of-bounds point".
func (e *Error) Error() string {
	return fmt.Sprintf("[%d,%d] ERROR: %s", e.Pos.Line, e.Pos.Col, e.message())
}

func (e *Error) message() string {
	switch e.Kind {
	case InvalidCharacter:
		return "Invalid character"
	case UnrecognizedKeyword:
		return "Unrecognized keyword"
	case InvalidNumber:
		return "Invalid number"
	case UnexpectedEOF:
		return "Unexpected end-of-file"
	case SyntaxError:
		return fmt.Sprintf("Expected %s, got %s", e.Expected, e.Actual)
	case InvalidShape:
		return "Invalid shape"
	case InvalidPosition:
		return "Invalid position"
	case NoGridDimensions:
		return "No grid dimensions"
	case OutOfBounds:
		return "Out-of-bounds point"
	case InvalidOrientation:
		return "Invalid orientation"
	}
	return "Unknown error"
}
