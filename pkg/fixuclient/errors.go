package fixuclient

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	// KindUnauthorized: missing/expired token, or the server said 401.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindServerError: any non-2xx response other than 401.
	KindServerError ErrorKind = "server_error"
	// KindNetworkFailure: the request never produced a response.
	KindNetworkFailure ErrorKind = "network_failure"
	// KindMalformedResponse: the body did not parse.
	KindMalformedResponse ErrorKind = "malformed_response"
)

// APIError is the one failure type API calls return. Every failure is
// tagged with a kind so screens can pick their notice without string
// matching.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	cause   error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error { return e.cause }

// KindOf extracts the error kind, or "" when err is not an APIError.
func KindOf(err error) ErrorKind {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}
