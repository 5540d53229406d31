package errs

import (
	"errors"
	"fmt"
)

// ErrAlreadyAssigned is returned when a delivery partner claim loses to another partner.
var ErrAlreadyAssigned = errors.New("already assigned")

type AlreadyAssignedError struct {
	ParamName string
	ID        any
}

func NewAlreadyAssignedError(paramName string, id any) *AlreadyAssignedError {
	return &AlreadyAssignedError{
		ParamName: paramName,
		ID:        id,
	}
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("%s: %s %s was already accepted by another delivery partner", ErrAlreadyAssigned, e.ParamName, e.ID)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}
