// Package apperror defines the error kinds the API distinguishes and the
// HTTP status each one maps to.
package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindDatabase
)

func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified error. Message is safe to show to clients; the
// wrapped internal error never is.
type Error struct {
	Kind         Kind
	Message      string
	RequiredTier string
	internal     error
}

var (
	ErrValidation      = &Error{Kind: KindValidation, Message: "invalid request"}
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated, Message: "unauthorized"}
	ErrForbidden       = &Error{Kind: KindForbidden, Message: "forbidden"}
	ErrNotFound        = &Error{Kind: KindNotFound, Message: "not found"}
	ErrDatabase        = &Error{Kind: KindDatabase, Message: "internal server error"}
)

func (e *Error) Error() string {
	if e.internal != nil {
		return e.Message + ": " + e.internal.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.internal
}

// Is reports kind equality so that errors.Is(err, ErrNotFound) matches any
// not-found error regardless of its message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

func (e *Error) WithInternal(err error) *Error {
	cp := *e
	cp.internal = err
	return &cp
}

func (e *Error) WithRequiredTier(tier string) *Error {
	cp := *e
	cp.RequiredTier = tier
	return &cp
}

func (e *Error) Status() int {
	return e.Kind.Status()
}

// Status returns the HTTP status for any error; unclassified errors are 500.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status()
	}
	return http.StatusInternalServerError
}
