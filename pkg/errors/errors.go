package errors

import (
	"errors"
	"fmt"
)

// Kind classifies why a single download failed
type Kind string

const (
	KindNetwork    Kind = "network"
	KindHTTPStatus Kind = "http_status"
	KindIO         Kind = "io"
	KindRequest    Kind = "request"
	KindUnknown    Kind = "unknown"
)

// Error is a download failure tagged with its kind.
// Code carries the HTTP status for KindHTTPStatus and is 0 otherwise.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Network wraps a transport failure (DNS, refused connection, timeout, broken body)
func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "network error", Err: err}
}

// HTTPStatus reports a non-success response status
func HTTPStatus(code int, status string) *Error {
	if status == "" {
		status = fmt.Sprintf("%d", code)
	}
	return &Error{
		Kind:    KindHTTPStatus,
		Code:    code,
		Message: fmt.Sprintf("unexpected HTTP status %s", status),
	}
}

// IO wraps a local filesystem failure
func IO(op string, err error) *Error {
	return &Error{Kind: KindIO, Message: op, Err: err}
}

// Request wraps a failure to build the request, usually a malformed URL
func Request(err error) *Error {
	return &Error{Kind: KindRequest, Message: "invalid request", Err: err}
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindHTTPStatus {
		return e.Code
	}
	return 0
}
