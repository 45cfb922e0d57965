package hash

import (
	"errors"
	"fmt"
)

// invalidParamsError is an error returned when a hashing API receives an
// invalid parameter, for instance an unsupported output size or a key
// shorter than the algorithm allows.
// It allows a function caller to differentiate unexpected program errors
// from errors caused by invalid inputs.
type invalidParamsError struct {
	error
}

func (e invalidParamsError) Unwrap() error {
	return e.error
}

// invalidParamsErrorf constructs a new invalidParamsError
func invalidParamsErrorf(msg string, args ...interface{}) error {
	return &invalidParamsError{
		error: fmt.Errorf(msg, args...),
	}
}

// IsInvalidParamsError checks if the input error is of an invalidParamsError type.
func IsInvalidParamsError(err error) bool {
	var target *invalidParamsError
	return errors.As(err, &target)
}

// invalidContextError is an error returned when a serialized hasher context
// is rejected: the bytes are malformed, describe an unknown algorithm, or
// carry parameters inconsistent with the algorithm they claim.
type invalidContextError struct {
	error
}

func (e invalidContextError) Unwrap() error {
	return e.error
}

// invalidContextErrorf constructs a new invalidContextError
func invalidContextErrorf(msg string, args ...interface{}) error {
	return &invalidContextError{
		error: fmt.Errorf(msg, args...),
	}
}

// IsInvalidContextError checks if the input error is of an invalidContextError type.
func IsInvalidContextError(err error) bool {
	var target *invalidContextError
	return errors.As(err, &target)
}
