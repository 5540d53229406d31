// Package errs provides standardized error types for the fastfoodie backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidTransitionError: For order status changes the lifecycle forbids
//   - AlreadyAssignedError: For a delivery claim lost to another partner
//   - UnauthorizedError and ForbiddenError: For callers without identity or scope
//   - StorageUnavailableError: For persistence failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter maps sentinels to status codes, so new kinds must keep
// a sentinel that errors.Is can match.
package errs
