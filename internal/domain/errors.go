package domain

import (
	"errors"
)

// Domain-specific errors for better error handling and user feedback
var (
	// ErrLinkNotFound is returned when a short code doesn't exist
	ErrLinkNotFound = errors.New("link not found")

	// ErrInvalidURL is returned when the submitted URL is not a valid absolute URL
	ErrInvalidURL = errors.New("invalid URL format")

	// ErrCodeTaken is returned when a custom code is already assigned to another link
	ErrCodeTaken = errors.New("short code already exists")

	// ErrCodeInvalid is returned when a custom code has characters outside the alphabet
	ErrCodeInvalid = errors.New("short code contains invalid characters")

	// ErrCreateFailed is returned for any unexpected storage failure during creation.
	// The underlying error is logged, never sent to the client.
	ErrCreateFailed = errors.New("error creating link")
)

// AppError wraps errors with additional context for better debugging
type AppError struct {
	Err      error  // Original error
	Message  string // User-friendly message
	Internal bool   // Whether to log as internal error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error for errors.Is and errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewInternalError wraps an unexpected storage or infrastructure error.
// Internal errors are logged server-side and never exposed to clients.
func NewInternalError(err error) *AppError {
	return &AppError{
		Err:      err,
		Message:  "internal error",
		Internal: true,
	}
}
