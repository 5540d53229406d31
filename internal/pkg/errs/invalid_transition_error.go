package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel for status changes the order lifecycle does not allow.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError names the requested and the current status.
type InvalidTransitionError struct {
	Target  string
	Current string
	Cause   error
}

func NewInvalidTransitionError(target, current string) *InvalidTransitionError {
	return &InvalidTransitionError{
		Target:  target,
		Current: current,
	}
}

func NewInvalidTransitionErrorWithCause(target, current string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{
		Target:  target,
		Current: current,
		Cause:   cause,
	}
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("%s: cannot move order to %s: current status is %s", ErrInvalidTransition, e.Target, e.Current)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
