package server

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound      = errors.New("server: not found")
	ErrBadRequest    = errors.New("server: bad request")
	ErrListenAddress = errors.New("server: invalid listen address")
)

// HTTPError is an error with the data needed to render it.
type HTTPError struct {
	// Err is logged, never sent to the client.
	Err error

	Message   string
	ErrorCode string
	Code      int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func newHTTPError(code int, errorCode, message string, err error) *HTTPError {
	return &HTTPError{Code: code, ErrorCode: errorCode, Message: message, Err: err}
}

func errNotFound(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, "not_found", message, ErrNotFound)
}

func errBadRequest(message string, err error) *HTTPError {
	if err != nil {
		err = errors.Join(ErrBadRequest, err)
	} else {
		err = ErrBadRequest
	}
	return newHTTPError(http.StatusBadRequest, "bad_request", message, err)
}
