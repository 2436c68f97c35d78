package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by repositories and services to provide
// fine-grained failure reasons.
var (
	ErrNotFound   = errors.New("not_found")
	ErrValidation = errors.New("validation_error")

	// For a missing/unreachable document store.
	ErrConnection = errors.New("connection_error")

	// For media-host and other remote failures.
	ErrUpstream = errors.New("upstream_error")
)

// AppError carries an HTTP status alongside the public message so
// services can decide the response class without importing net/http
// concerns into every controller branch.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondError(w, appErr.StatusCode, appErr.Message, appErr.Err)
		return
	}
	// Fallback for unexpected error types
	RespondError(w, http.StatusInternalServerError, "An unexpected error occurred", err)
}
