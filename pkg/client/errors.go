package client

import (
	"fmt"
)

// TransportError represents a failed HTTP exchange with the Paperless API.
// It carries the request URL and, for HTTP-level failures, the status code;
// for network failures the underlying error is wrapped instead.
type TransportError struct {
	// URL is the request URL that failed.
	URL string

	// StatusCode is the HTTP status code, 0 when no response was received.
	StatusCode int

	// Message is the HTTP status line, empty for network failures.
	Message string

	// Err is the underlying network or I/O error, nil for HTTP-level
	// failures.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("paperless request %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("paperless request %s failed: %s", e.URL, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *TransportError) Unwrap() error {
	return e.Err
}
