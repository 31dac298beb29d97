package api

import (
	"errors"
	"fmt"
)

// APIError represents a failure reported by the device cloud, either as a
// non-2xx HTTP status or as a non-zero resultCode in a 200 response.
type APIError struct {
	// StatusCode is the HTTP status of the failed request, or 0 when the
	// failure happened before or after the HTTP exchange.
	StatusCode int
	// ResultCode is the vendor result code from the response envelope,
	// or 0 when the response never decoded that far.
	ResultCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("api error: %s: %v", e.Message, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("api error: %s (HTTP %d)", e.Message, e.StatusCode)
	case e.ResultCode != 0:
		return fmt.Sprintf("api error: %s (resultCode %d)", e.Message, e.ResultCode)
	default:
		return fmt.Sprintf("api error: %s", e.Message)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates an APIError wrapping an underlying cause.
func NewAPIError(message string, err error) *APIError {
	return &APIError{Message: message, Err: err}
}

// IsAPIError checks whether err is or wraps an *APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
