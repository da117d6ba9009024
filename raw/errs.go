package raw

import (
	"errors"
	"fmt"
)

// ErrorKind classifies positioned errors. All kinds share one representation
// so callers need a single display path.
type ErrorKind int

const (
	// SyntaxError is a grammar violation during parsing, including
	// trailing non-whitespace after the top-level value and a breached
	// nesting depth limit.
	SyntaxError ErrorKind = iota
	// TypeMismatch is a shape accessor applied to a value of another kind.
	TypeMismatch
	// MissingField is a required object member that is absent.
	MissingField
	// RangeOrFormat is numeral text that does not fit the requested
	// numeric type or violates that type's grammar.
	RangeOrFormat
	// Validation is an application-supplied failure raised through
	// Value.Invalid.
	Validation
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case TypeMismatch:
		return "type mismatch"
	case MissingField:
		return "missing field"
	case RangeOrFormat:
		return "range or format error"
	case Validation:
		return "validation error"
	}
	return "error"
}

// Error is a positioned JSON error: a byte offset into the original text, a
// single-line message, and an optional wrapped cause. It does not retain the
// text; resolve Offset with the span package against the caller's copy.
type Error struct {
	Kind   ErrorKind
	Offset int
	Msg    string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s at offset %d: %s: %s", e.Kind, e.Position(), e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Position(), e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Position returns the byte offset of the error's root cause. When a wrapped
// cause carries its own offset, that inner offset wins; wrapping never
// replaces a more specific position with an outer one.
func (e *Error) Position() int {
	var inner *Error
	if errors.As(e.Cause, &inner) {
		return inner.Position()
	}
	return e.Offset
}

func syntaxErr(off int, format string, args ...any) *Error {
	return &Error{
		Kind:   SyntaxError,
		Offset: off,
		Msg:    fmt.Sprintf(format, args...),
	}
}
