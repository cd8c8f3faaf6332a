package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into one of the user-visible failure categories.
// Every kind maps to exactly one HTTP status code.
type Kind int

const (
	KindNotFound Kind = iota
	KindConflict
	KindForbidden
	KindUnauthorized
	KindInvalidRequest
)

// Error is a terminal, user-visible failure. The message is safe to return
// to the client as-is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is match two app errors by kind regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// StatusCode returns the HTTP status code for the error's kind.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindInvalidRequest:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...interface{}) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func InvalidRequest(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

// Sentinels for errors.Is checks against a kind.
var (
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrConflict       = &Error{Kind: KindConflict}
	ErrForbidden      = &Error{Kind: KindForbidden}
	ErrUnauthorized   = &Error{Kind: KindUnauthorized}
	ErrInvalidRequest = &Error{Kind: KindInvalidRequest}
)
