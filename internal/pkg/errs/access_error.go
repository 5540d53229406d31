package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the caller could not be identified.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when an identified caller acts outside its scope.
	ErrForbidden = errors.New("forbidden")
)

type UnauthorizedError struct {
	Reason string
	Cause  error
}

func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

func NewUnauthorizedErrorWithCause(reason string, cause error) *UnauthorizedError {
	return &UnauthorizedError{
		Reason: reason,
		Cause:  cause,
	}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrUnauthorized, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnauthorized, e.Reason)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

type ForbiddenError struct {
	Reason string
}

func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s", ErrForbidden, e.Reason)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
