// Package guard detects values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and aggregates. Its zero value is
// "not constructed", so a struct literal built outside the package fails Validate.
//
//	type Command struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCommand() Command { return Command{guard: guard.NewConstructorGuard()} }
//
//	func (c Command) Validate() error { return c.guard.Validate(ErrCommandIsNotConstructed) }
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as built by its constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) for a zero guard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
