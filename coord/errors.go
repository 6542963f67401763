package coord

import (
	"errors"
	"fmt"
)

// Kind classifies the errors produced when validating canvas arguments.
type Kind int

const (
	// InvalidArgument flags a non-positive canvas dimension or an otherwise
	// unusable constructor argument.
	InvalidArgument Kind = iota + 1
	// OutOfRange flags a coordinate, linear index or range endpoint outside
	// the canvas after normalization.
	OutOfRange
	// TypeMismatch flags a key (or key component) of the wrong shape, e.g. a
	// fractional coordinate.
	TypeMismatch
	// InvalidValue flags a cell value which is neither exactly one character
	// nor the transparent marker.
	InvalidValue
)

// String returns a human-readable representation of the error kind.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case OutOfRange:
		return "OutOfRange"
	case TypeMismatch:
		return "TypeMismatch"
	case InvalidValue:
		return "InvalidValue"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by all validating operations of this
// module. Callers test for a kind with errors.Is and one of the Err… sentinels:
//
//	if errors.Is(err, coord.ErrOutOfRange) { … }
type Error struct {
	Kind  Kind   // classification of the error
	Op    string // operation which failed, e.g. "get" or "slice"
	Issue string // human-readable description of the issue
}

// Sentinel errors, one per kind. They carry no operation or issue and are
// meant to be used as targets for errors.Is.
var (
	ErrInvalidArgument = &Error{Kind: InvalidArgument}
	ErrOutOfRange      = &Error{Kind: OutOfRange}
	ErrTypeMismatch    = &Error{Kind: TypeMismatch}
	ErrInvalidValue    = &Error{Kind: InvalidValue}
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		if e.Issue == "" {
			return fmt.Sprintf("[%s]", e.Kind)
		}
		return fmt.Sprintf("[%s] %s", e.Kind, e.Issue)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Op, e.Issue)
}

// Is reports whether target is an *Error of the same kind. This makes the
// package sentinels usable with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Errorf creates an *Error of kind k for operation op.
func Errorf(k Kind, op string, format string, args ...any) *Error {
	return &Error{
		Kind:  k,
		Op:    op,
		Issue: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of the first *Error in err's chain, and 0 if there
// is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
