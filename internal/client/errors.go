package client

import (
	"errors"
	"fmt"
)

// Sentinel errors for fetch failures.
var (
	// ErrUnexpectedStatus is returned when the menu endpoint answers with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrMalformedBody is returned when the response is not a JSON array of items
	ErrMalformedBody = errors.New("malformed menu body")
)

// FetchError describes a failed menu fetch. Status is zero when the request
// never got a response.
type FetchError struct {
	Err    error
	URL    string
	Status int
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: status %d: %v", e.URL, e.Status, e.Err)
	}

	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
