// Package guard detects zero-value structs that bypassed their constructor.
//
// Commands, queries and value objects embed a ConstructorGuard and call
// Validate before use:
//
//	type TransitionOrderCommand struct {
//	    orderID int64
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c TransitionOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
//	}
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is false in its zero value and true once NewConstructorGuard set it.
// It is an immutable value and safe to copy and share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as built by its constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
