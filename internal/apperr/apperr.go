// Package apperr defines the error taxonomy surfaced by the API.
//
// Every service-layer failure is classified as one of the kinds below so
// the HTTP layer can map it to a status code without inspecting message
// text. Errors are wrapped with %w as usual; KindOf walks the chain.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the caller.
type Kind int

const (
	// KindInternal is the default for unclassified failures.
	KindInternal Kind = iota

	// KindValidation marks malformed or out-of-policy input.
	KindValidation

	// KindUnauthorized marks missing or invalid authentication.
	KindUnauthorized

	// KindForbidden marks an authenticated but disallowed action,
	// e.g. a cross-household reference or non-owner settlement.
	KindForbidden

	// KindNotFound marks a referenced entity that does not exist.
	KindNotFound

	// KindConflict marks a unique-constraint style collision, e.g.
	// joining a household while already belonging to one.
	KindConflict
)

// Error is an error with a stable kind and a human-readable message.
type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

// Kind returns the error's classification.
func (e *Error) Kind() Kind { return e.kind }

// New creates a classified error with the given message.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, err: errors.New(msg)}
}

// Newf creates a classified error with a formatted message.
// Format with %w to preserve a wrapped cause.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, err: fmt.Errorf(format, args...)}
}

// Wrap classifies an existing error, keeping it available to errors.Is.
func Wrap(kind Kind, err error) *Error {
	return &Error{kind: kind, err: err}
}

// KindOf reports the kind of err, walking the wrap chain.
// Unclassified errors (including nil) report KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}
