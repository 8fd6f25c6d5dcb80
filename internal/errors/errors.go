package errors

import (
	"errors"
	"fmt"
)

// Kind sentinels. Every error that leaves a service matches exactly one of
// these through errors.Is.
var (
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique field is already taken.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized is returned when the caller identity is missing or insufficient.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStorage is returned when the underlying store fails.
	ErrStorage = errors.New("storage failure")
)

// AppError carries a kind, a caller-facing message and the underlying cause.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// New builds an AppError of the given kind.
func New(kind error, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap builds an AppError of the given kind around cause.
func Wrap(kind error, cause error, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

// InvalidInput is shorthand for New(ErrInvalidInput, message).
func InvalidInput(message string) *AppError { return New(ErrInvalidInput, message) }

// NotFound is shorthand for New(ErrNotFound, message).
func NotFound(message string) *AppError { return New(ErrNotFound, message) }

// Conflict is shorthand for New(ErrConflict, message).
func Conflict(message string) *AppError { return New(ErrConflict, message) }

// Unauthorized is shorthand for New(ErrUnauthorized, "Unauthorized").
func Unauthorized() *AppError { return New(ErrUnauthorized, "Unauthorized") }

// Storage wraps a driver error. The cause is kept for logging only.
func Storage(cause error, op string) *AppError {
	return Wrap(ErrStorage, cause, "failed to %s", op)
}

// Is reports whether err matches target. Re-exported so callers importing this
// package under its own name keep access to the stdlib helper.
func Is(err, target error) bool { return errors.Is(err, target) }

const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeStorageFailure = "STORAGE_FAILURE"
)

// Code maps err to its wire code. Unknown errors are storage failures.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	default:
		return CodeStorageFailure
	}
}

// PublicMessage returns the message safe to show to API callers.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "An unknown error occurred"
}

// ErrorResponse represents a standardized HTTP error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
