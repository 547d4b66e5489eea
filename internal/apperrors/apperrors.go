// Package apperrors defines the error taxonomy shared by services and
// handlers. Services return *Error values; handlers map the kind to an HTTP
// status at the boundary and serialize the machine-stable code alongside the
// human-readable detail.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure.
type Kind int

const (
	// KindValidation covers malformed or missing input.
	KindValidation Kind = iota
	// KindNotFound covers missing users, products and cart items.
	KindNotFound
	// KindAuthMissing means no credential was presented at all.
	KindAuthMissing
	// KindAuthInvalid means a credential was presented and rejected.
	KindAuthInvalid
	// KindForbidden means the caller is authenticated but lacks privilege.
	KindForbidden
	// KindConflict covers uniqueness violations such as a duplicate email.
	KindConflict
	// KindBusinessRule covers domain rejections: empty cart, insufficient stock.
	KindBusinessRule
	// KindExternal covers failures of an external dependency such as the
	// payment processor.
	KindExternal
	// KindInternal is the fallback for unexpected failures.
	KindInternal
)

// Error is a classified failure with a machine-stable code.
type Error struct {
	Kind   Kind
	Code   string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a classified error.
func New(kind Kind, code, detail string) *Error {
	return &Error{Kind: kind, Code: code, Detail: detail}
}

// Newf builds a classified error with a formatted detail string.
func Newf(kind Kind, code, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Code: code, Detail: fmt.Sprintf(format, args...)}
}

// Wrap builds a classified error around a cause.
func Wrap(kind Kind, code, detail string, err error) *Error {
	return &Error{Kind: kind, Code: code, Detail: detail, Err: err}
}

// KindOf reports the kind of err, or KindInternal when err carries no
// classification.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// CodeOf reports the machine-stable code of err, or "internal_error".
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "internal_error"
}

// DetailOf reports the human-readable detail of err.
func DetailOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return "Internal server error"
}

// HTTPStatus maps a kind to the transport status the API has always used.
// Note that KindAuthMissing and KindForbidden both map to 403: the
// distinction survives in the kind and code, not in the status.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthMissing:
		return http.StatusForbidden
	case KindAuthInvalid:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusBadRequest
	case KindBusinessRule:
		return http.StatusBadRequest
	case KindExternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
