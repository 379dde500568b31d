// Package serrors defines semantic errors: errors tagged with a sentinel kind
// that callers can branch on with errors.Is/As without string matching. The
// lending service uses them to carry business outcomes from the storage and
// service layers up to the HTTP status mapping.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is the sentinel type for a semantic error category. Only NewKind can
// produce values of it.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a comparable sentinel for a semantic error category. Kinds
// match through errors.Is/As when wrapped in an Error from this package.
func NewKind(name string) Kind { return kind{s: name} }

// The kinds the lending service reports. Domain rule violations get their own
// kinds next to the domain types; these cover the generic request outcomes.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates a state conflict, such as a duplicate code.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL")
)

// Error couples a Kind with an optional message and an optional wrapped cause.
//
// errors.Is and errors.As match against both the kind sentinel and the wrapped
// cause chain. Error() renders "<msg>: <cause>" when both are present, falling
// back to whichever is set, then to the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds a semantic error from a kind and a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds a semantic error that also records err as the underlying cause.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds a semantic error carrying nothing but the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

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

// Unwrap exposes the cause to errors.Unwrap/Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel as well as the cause chain.
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

// As matches target against the kind sentinel as well as the cause chain.
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

// Kind returns the kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, which may be nil.
func (e *Error) Cause() error { return e.err }
