package app

import (
	"errors"
	"fmt"
)

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	var ire invalidReqErr
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// TooManyRequestsError is returned when outbound call couldn't get through the rate limiter.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// ErrorKind classifies fetch failures.
type ErrorKind int

// Fetch error kinds.
const (
	KindUnknown ErrorKind = iota
	// KindNetwork - transport failure, request never got a response.
	KindNetwork
	// KindStatus - response with non success status code.
	KindStatus
	// KindParse - response body couldn't be decoded.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindParse:
		return "parse"
	}
	return "unknown"
}

// FetchError is returned by data sources when fetching data fails.
type FetchError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

// Error implements error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates FetchError of given kind.
func NewFetchError(op string, kind ErrorKind, err error) *FetchError {
	return &FetchError{
		Op:   op,
		Kind: kind,
		Err:  err,
	}
}

// FetchErrorKind returns kind of fetch error wrapped in err.
// Returns KindUnknown for nil and for errors not caused by FetchError.
func FetchErrorKind(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
