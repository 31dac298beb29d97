package auth

import (
	"errors"
	"fmt"
)

// AuthError indicates a failed token exchange or refresh. A refresh failure
// means the stored credentials are no longer usable and the login flow must
// be re-run.
type AuthError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication error: %s (caused by: %v)", e.Message, e.Err)
	}
	return fmt.Sprintf("authentication error: %s", e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates an authentication error
func NewAuthError(message string, err error) *AuthError {
	return &AuthError{Message: message, Err: err}
}

// IsAuthError checks if an error is an authentication error
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// CallbackError indicates that no authorization code could be captured:
// the local listener timed out, the callback URL was malformed, or the
// authorization server reported an error in the redirect.
type CallbackError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *CallbackError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("callback error: %s (caused by: %v)", e.Message, e.Err)
	}
	return fmt.Sprintf("callback error: %s", e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *CallbackError) Unwrap() error {
	return e.Err
}

// NewCallbackError creates a callback capture error
func NewCallbackError(message string, err error) *CallbackError {
	return &CallbackError{Message: message, Err: err}
}

// IsCallbackError checks if an error is a callback capture error
func IsCallbackError(err error) bool {
	var cbErr *CallbackError
	return errors.As(err, &cbErr)
}
