package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned for a blank or whitespace-only city; no request is made.
var ErrEmptyInput = errors.New("weather: empty city")

// NetworkError wraps a transport-level failure reaching the provider
// (timeout, DNS, refused connection, unreadable body).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("weather: network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProviderError is a non-success status returned by the provider.
// Message holds the provider's own "message" field and may be empty.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("weather: provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("weather: provider returned status %d: %s", e.StatusCode, e.Message)
}
