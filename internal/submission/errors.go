package submission

import (
	"errors"
	"fmt"
)

var (
	ErrBusy              = errors.New("submission already in progress")
	ErrInvalidTransition = errors.New("invalid submission transition")
	ErrNotEditable       = errors.New("fields are locked until the form is idle")
	ErrUnknownField      = errors.New("unknown field")
	ErrClosed            = errors.New("submission controller closed")
)

// ErrorKind classifies the last error a form surfaced to the user.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	ErrorValidation
	ErrorNetwork
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorValidation:
		return "ValidationError"
	case ErrorNetwork:
		return "NetworkError"
	default:
		return "None"
	}
}

// ValidationError reports a required field that is missing or malformed.
// It is raised before the gateway is contacted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NetworkError wraps a gateway failure or timeout.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// KindOf maps an error returned by the controller to its ErrorKind.
func KindOf(err error) ErrorKind {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return ErrorValidation
	}
	var nErr *NetworkError
	if errors.As(err, &nErr) {
		return ErrorNetwork
	}
	return ErrorNone
}
