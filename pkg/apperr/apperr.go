// Package apperr defines the application error taxonomy.
//
// Services return *Error values (or wrap them) so the HTTP layer can map
// failures to status codes without inspecting SQL or driver details itself.
package apperr

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Error is an application error carrying an HTTP status and a message safe
// to return to clients. Internal detail stays in the wrapped cause.
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// New creates an application error with the given status and client message.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Wrap attaches a cause to a new application error.
func Wrap(status int, message string, cause error) *Error {
	return &Error{Status: status, Message: message, cause: cause}
}

// Validation creates a 400 error for malformed or invalid input.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthorized creates a 401 error.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// NotFound creates a 404 error. Cross-tenant lookups surface as not found
// rather than forbidden so resource existence is never leaked.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict creates a 409 error for duplicate-resource failures.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Upstream creates a 502 error for external provider failures.
func Upstream(message string, cause error) *Error {
	return Wrap(http.StatusBadGateway, message, cause)
}

// UpstreamTimeout creates a 504 error for external provider deadline misses.
func UpstreamTimeout(message string) *Error {
	return New(http.StatusGatewayTimeout, message)
}

// Internal creates a 500 error. The client message is always the sanitized
// constant; detail lives only in the wrapped cause for logging.
func Internal(cause error) *Error {
	return Wrap(http.StatusInternalServerError, "Internal server error", cause)
}

// Postgres error codes that map to client-visible failures.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// IsDuplicateKey reports whether err is a postgres unique-constraint violation.
func IsDuplicateKey(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}

// IsForeignKeyViolation reports whether err is a postgres FK violation.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqForeignKeyViolation
}

// FromDB translates a storage error into an application error. Integrity
// violations become client errors; everything else is sanitized to a 500.
func FromDB(err error, duplicateMessage string) *Error {
	switch {
	case IsDuplicateKey(err):
		return Conflict(duplicateMessage)
	case IsForeignKeyViolation(err):
		return Validation("Referenced resource does not exist")
	default:
		return Internal(err)
	}
}

// Status returns the HTTP status for err, defaulting to 500 for errors
// outside the taxonomy.
func Status(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// ClientMessage returns the message safe to send to the client. Unclassified
// errors collapse to the sanitized internal message.
func ClientMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
