package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrForbidden        = errors.New("operation not allowed")
	ErrBadRequest       = errors.New("malformed request")
	ErrInternal         = errors.New("internal server error")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrCORSBlocked      = errors.New("request blocked by CORS policy")
)

// ApiErr is an error that knows the HTTP status it should be answered with.
// The sentinel it wraps is what errors.Is matches against.
type ApiErr struct {
	StatusCode int
	err        error
	Details    string // Additional details about the error
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// Message returns the error text without details.
func (e *ApiErr) Message() string {
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause == nil {
		return msg
	}
	var apiErr *ApiErr
	if errors.As(e.Cause, &apiErr) {
		return msg + " -> " + apiErr.GetFullError()
	}
	return msg + " -> " + e.Cause.Error()
}

func (e *ApiErr) Unwrap() error {
	return e.err
}

func withStatus(status int, message string, sentinel error) *ApiErr {
	return &ApiErr{StatusCode: status, err: fmt.Errorf("%s: %w", message, sentinel)}
}

func NewNotFoundError(message string) *ApiErr {
	return withStatus(http.StatusNotFound, message, ErrNotFound)
}

// NewForbiddenError rejects an operation the caller may never perform in the
// current state, such as adding a second about-me record.
func NewForbiddenError(message string) *ApiErr {
	return withStatus(http.StatusForbidden, message, ErrForbidden)
}

func NewBadRequestError(message string) *ApiErr {
	return withStatus(http.StatusBadRequest, message, ErrBadRequest)
}

func NewMethodNotAllowedError(message string) *ApiErr {
	return withStatus(http.StatusMethodNotAllowed, message, ErrMethodNotAllowed)
}

func NewInternalError(message string) *ApiErr {
	return withStatus(http.StatusInternalServerError, message, ErrInternal)
}

func NewInternalErrorWithCause(message string, cause error) *ApiErr {
	e := NewInternalError(message)
	e.Cause = cause
	return e
}

func NewCORSError(origin string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrCORSBlocked,
		Details:    fmt.Sprintf("Origin '%s' is not allowed by CORS policy", origin),
	}
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StatusCode returns the HTTP status carried by err, or 500.
func StatusCode(err error) int {
	var apiErr *ApiErr
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusInternalServerError
}
