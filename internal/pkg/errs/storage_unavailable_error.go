package errs

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable marks persistence failures. A write that fails with it was not applied.
var ErrStorageUnavailable = errors.New("storage unavailable")

type StorageUnavailableError struct {
	Operation string
	Cause     error
}

func NewStorageUnavailableError(operation string, cause error) *StorageUnavailableError {
	return &StorageUnavailableError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *StorageUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrStorageUnavailable, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStorageUnavailable, e.Operation)
}

// Unwrap exposes both the sentinel and the driver error.
func (e *StorageUnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStorageUnavailable}
	}
	return []error{ErrStorageUnavailable, e.Cause}
}
