// Package guard provides a defensive construction check for commands and
// value objects. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so objects that bypassed their constructor fail
// validation instead of silently carrying unvalidated state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller supplies
// a nil validation error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its enclosing object was created through a
// designated constructor. The zero value reports the object as unconstructed.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks the enclosing object as
// properly constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was properly constructed. Otherwise it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
