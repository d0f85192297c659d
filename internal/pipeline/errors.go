package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch marks a document that could not be retrieved
	ErrFetch = errors.New("fetch failed")
	// ErrDecode marks a document that is not a JSON array of missions
	ErrDecode = errors.New("decode failed")
)

// StatusError is a non-2xx response
type StatusError struct {
	Code   int
	Status string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.Status)
}

func (e *StatusError) Unwrap() error { return ErrFetch }

// TransportError is a failure to reach or read the source
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{ErrFetch, e.Err} }

// DecodeError is a body that does not hold a mission array
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }
