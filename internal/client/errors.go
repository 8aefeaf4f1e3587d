package client

import (
	"errors"
	"fmt"
)

// ErrInvalidArguments is returned before any network call when the request
// cannot be encoded. The search endpoint requires at least one scoping
// mechanism: a free-text query or a category.
var ErrInvalidArguments = errors.New("invalid arguments: when the query is empty, a category must be specified")

// HTTPError is a 4xx/5xx answer from Marktplaats.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Status)
}

// UnexpectedStatusError marks a successful (2xx) but non-200 answer. The
// server accepted the request but violated the contract, which callers may
// want to treat differently from a plain rejection.
type UnexpectedStatusError struct {
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("received non-200 status code: %d", e.StatusCode)
}

// DecodeError marks a 200 answer whose body is not valid JSON.
type DecodeError struct {
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("received invalid (non-json) response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
