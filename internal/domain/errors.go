package domain

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus marks a GitHub response with a non-success status.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// ListingError is returned when the repository listing cannot be fetched.
// StatusCode is zero for transport or decoding failures.
type ListingError struct {
	Account    string
	StatusCode int
	Err        error
}

func (e *ListingError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("listing repositories for %s: status %d: %v", e.Account, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("listing repositories for %s: %v", e.Account, e.Err)
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

// StatusError carries the HTTP status of a failed GitHub request.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GitHub API %s %s: %d", e.Method, e.Path, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// StatusCodeOf returns the HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
