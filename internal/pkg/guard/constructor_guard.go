// Package guard detects value objects and commands that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands and queries. Its zero value is
// "not constructed", so a struct literal fails Validate while a value built
// by the constructor passes.
//
// Example:
//
//	type AdvanceStatusCommand struct {
//	    orderNumber kernel.OrderNumber
//	    guard       guard.ConstructorGuard
//	}
//
//	func (c AdvanceStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
