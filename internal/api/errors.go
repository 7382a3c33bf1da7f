package api

import (
	"fmt"
)

// NetworkError reports a transport failure: DNS, refused connection, abort or
// timeout. No HTTP status was received.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError reports a response whose status was not 2xx.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// DecodeError reports a 2xx response whose body was not JSON.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
