package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodePrecondition        = "PRECONDITION_FAILED"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeStorage             = "STORAGE_ERROR"
	ErrCodeRateLimited         = "RATE_LIMITED"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeUpstreamMalformed   = "UPSTREAM_MALFORMED"
	ErrCodeUpstreamRejected    = "UPSTREAM_REJECTED"
)

// DefaultRetryAfter is the wait suggested to clients after a rate limit, in seconds.
const DefaultRetryAfter = 60

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code       string // Error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Message    string // Human-readable error message
	Status     int    // HTTP status code
	Err        error  // Wrapped underlying error (optional)
	RetryAfter int    // Seconds a client should wait before retrying (0 = not set)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// As finds the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in err's chain, or
// ErrCodeInternal for any other non-nil error.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  http.StatusNotFound,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  http.StatusBadRequest,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewPreconditionError reports an operation that is not allowed in the
// current state, such as reviewing a set that was never studied.
func NewPreconditionError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodePrecondition,
		Message: message,
		Status:  http.StatusConflict,
		Err:     err,
	}
}

// NewConflictError creates a new CONFLICT error for an identifier already in use.
func NewConflictError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeConflict,
		Message: fmt.Sprintf("%s already exists: %v", resource, id),
		Status:  http.StatusConflict,
	}
}

// NewStorageError hides the persistence failure behind a generic message.
func NewStorageError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeStorage,
		Message: "storage failure, please try again",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NewRateLimitedError creates a new RATE_LIMITED error.
func NewRateLimitedError(err error) *AppError {
	return &AppError{
		Code:       ErrCodeRateLimited,
		Message:    "language model rate limit exceeded, wait 1-2 minutes and try again",
		Status:     http.StatusTooManyRequests,
		Err:        err,
		RetryAfter: DefaultRetryAfter,
	}
}

// NewUpstreamUnavailableError creates a new UPSTREAM_UNAVAILABLE error.
func NewUpstreamUnavailableError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeUpstreamUnavailable,
		Message: "language model service is unavailable",
		Status:  http.StatusServiceUnavailable,
		Err:     err,
	}
}

// NewUpstreamMalformedError creates a new UPSTREAM_MALFORMED error.
func NewUpstreamMalformedError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeUpstreamMalformed,
		Message: "could not parse the language model response, please try again",
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

// NewUpstreamRejectedError reports a language model request refused by the
// provider, such as a bad API key.
func NewUpstreamRejectedError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeUpstreamRejected,
		Message: "language model rejected the request, check the API key and model configuration",
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}
