package catalog

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a fetch failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindHTTPStatus
	KindTransport
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindHTTPStatus:
		return "http_status"
	case KindTransport:
		return "transport"
	case KindMalformed:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// HTTPStatusError reports a non-2xx response from the endpoint.
type HTTPStatusError struct {
	StatusCode int
	URL        string
}

func (e *HTTPStatusError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("api %s returned status %d", e.URL, e.StatusCode)
}

// TransportError reports a request that never produced a response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("execute request: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError reports a body that could not be decoded into items.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	switch {
	case e.Err != nil && e.Reason != "":
		return fmt.Sprintf("decode response: %s: %v", e.Reason, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("decode response: %v", e.Err)
	default:
		return "decode response: " + e.Reason
	}
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// KindOf classifies err by walking its wrap chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return KindHTTPStatus
	}
	var malformed *MalformedResponseError
	if errors.As(err, &malformed) {
		return KindMalformed
	}
	var transport *TransportError
	if errors.As(err, &transport) {
		return KindTransport
	}
	return KindUnknown
}

// UserMessage returns the text shown to the user for a failed fetch.
func UserMessage(err error) string {
	switch KindOf(err) {
	case KindHTTPStatus:
		var statusErr *HTTPStatusError
		errors.As(err, &statusErr)
		return fmt.Sprintf("The recipe server answered with an error (HTTP %d). Press r to retry.", statusErr.StatusCode)
	case KindTransport:
		return "Could not reach the recipe server. Check your connection and press r to retry."
	case KindMalformed:
		return "The recipe server sent a response we could not read. Press r to retry."
	default:
		return "Something went wrong while loading recipes. Press r to retry."
	}
}
