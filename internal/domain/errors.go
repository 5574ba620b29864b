package domain

import (
	"errors"
	"fmt"
)

type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusFailedPrecondition
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusFailedPrecondition:
		return "FAILED_PRECONDITION"
	default:
		return "UNKNOWN"
	}
}

// OpError is the engine-boundary error: a shallow status code plus a
// human-readable message. Handlers map the code to a transport status;
// nothing deeper is needed here.
type OpError struct {
	Code    StatusCode
	Message string
}

func (e *OpError) Error() string {
	return e.Message
}

func NewInvalidArgument(message string) *OpError {
	return &OpError{Code: StatusInvalidArgument, Message: message}
}

func NewFailedPrecondition(message string) *OpError {
	return &OpError{Code: StatusFailedPrecondition, Message: message}
}

func NewFailedPreconditionf(format string, args ...interface{}) *OpError {
	return &OpError{Code: StatusFailedPrecondition, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the status code from err, or ok=false if err is not an
// OpError.
func CodeOf(err error) (StatusCode, bool) {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Code, true
	}
	return 0, false
}
