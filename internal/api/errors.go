package api

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired is returned when the back end rejects the bearer
	// credential. The session has already been cleared when this is
	// returned; the user must log in again.
	ErrSessionExpired = errors.New("session expired: please log in again")
)

// APIError is a non-2xx response from the back end. Message carries the
// response body verbatim so server-side diagnostics reach the user
// unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}
