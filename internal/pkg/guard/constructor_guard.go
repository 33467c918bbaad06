// Package guard holds the constructor guard embedded by commands, queries and
// value objects so that zero values can be told apart from constructed ones.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it as a
// private field and set it with NewConstructorGuard:
//
//	type ChangeProductStatusCommand struct {
//	    productID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c ChangeProductStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrChangeProductStatusCommandIsNotConstructed)
//	}
//
// The zero value reports the object as not constructed.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
