package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoContent is returned by RandomIdea when the backend answers 204:
// no idea is left in the requested budget. It is an empty result, not a failure.
var ErrNoContent = errors.New("api: no content")

// TransportError means the request did not produce a usable response:
// the backend was unreachable, the connection dropped, or the body could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: transport: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError is a response whose status is outside 2xx.
type HTTPError struct {
	Op         string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
}

// IsFailure reports whether err is a TransportError or HTTPError.
// ErrNoContent and nil are not failures.
func IsFailure(err error) bool {
	var te *TransportError
	var he *HTTPError
	return errors.As(err, &te) || errors.As(err, &he)
}
