// Package serrors defines semantic error kinds for the toolkit. A kind is
// a comparable sentinel describing the category of a failure; the Error
// wrapper attaches a kind to a message and an optional cause while keeping
// errors.Is/As working against both.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by the sentinels created with
// NewKind. It distinguishes semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind with the given name. Kinds are
// comparable and match through errors.Is/As when wrapped in an Error.
func NewKind(name string) Kind { return kind{s: name} }

// The default kinds cover the failure categories the toolkit produces.
var (
	// ErrInvalidArgument indicates a caller-supplied parameter is out of
	// contract (zero grid points, inverted range, non-finite bound).
	ErrInvalidArgument = NewKind("INVALID_ARGUMENT")
	// ErrOutOfRange indicates a request outside the supported domain, such
	// as a critical-radius target the field never reaches.
	ErrOutOfRange = NewKind("OUT_OF_RANGE")
	// ErrUnsupported indicates a requested capability that is not
	// available, e.g. an unknown render format.
	ErrUnsupported = NewKind("UNSUPPORTED")
	// ErrInternal indicates a bug or broken invariant inside the toolkit.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind sentinel, an optional wrapped
// cause and an optional message.
//
// Matching semantics: errors.Is(err, target) matches when target is either
// the kind or anything in the wrapped chain; errors.As behaves likewise.
//
// Error string: "<msg>: <cause>" when both are set, otherwise whichever is
// present, falling back to the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and a formatted
// message. Use Wrap to also record a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind, wrapping cause err
// and attaching a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying just the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause so that errors.Unwrap/Is/As can walk
// the chain.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches type assertions against either the kind sentinel or the
// wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
