package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error so handlers can map it to an HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindConflict
	KindInsufficientFunds
)

// Error is the single error type returned by services and repositories.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error        { return New(KindValidation, message) }
func NotFound(message string) *Error          { return New(KindNotFound, message) }
func Unauthorized(message string) *Error      { return New(KindUnauthorized, message) }
func Conflict(message string) *Error          { return New(KindConflict, message) }
func InsufficientFunds(message string) *Error { return New(KindInsufficientFunds, message) }

// KindOf extracts the kind from an error chain. Unclassified errors are
// internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
