// Package guard lets value objects, entities, commands and queries detect
// whether they were built through their constructor or left as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value is not usable.
// Only NewConstructorGuard produces a guard that validates.
//
// Example usage:
//
//	var ErrTextIsNotConstructed = errors.New("Text must be created via NewText")
//
//	type Text struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewText(raw string) (Text, error) {
//	    // validation...
//	    return Text{value: raw, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t Text) Validate() error {
//	    return t.guard.Validate(ErrTextIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as properly constructed.
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
