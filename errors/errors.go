package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNetwork           = fmt.Errorf("network error")
	ErrBackend           = fmt.Errorf("backend error")
	ErrValidation        = fmt.Errorf("validation error")
	ErrUnauthorized      = fmt.Errorf("unauthorized")
	ErrNotFound          = fmt.Errorf("not found")
	ErrAllProfilesFailed = fmt.Errorf("all request profiles failed")
	ErrMockUnsupported   = fmt.Errorf("endpoint not available in mock mode")
	ErrTokenExpired      = fmt.Errorf("api token expired")
	ErrInvalidConfig     = fmt.Errorf("invalid configuration")
	ErrNotifierDisabled  = fmt.Errorf("notifier disabled")
)

// HTTPError is returned when the backend answers with a non-2xx status.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d, message: %s", e.Status, e.Body)
}

// Unwrap classifies the status so callers can use errors.Is on the sentinels.
func (e *HTTPError) Unwrap() error {
	return FromStatus(e.Status)
}

func FromStatus(status int) error {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrBackend
	}
}

// UserMessage turns an error chain into the text shown to end users.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "Invalid data provided."
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrTokenExpired):
		return "Unauthorized access."
	case errors.Is(err, ErrNotFound):
		return "Resource not found."
	case errors.Is(err, ErrNetwork):
		return "Network error. Please check your connection."
	default:
		return "Backend service error. Please try again later."
	}
}
