// Package guard provides the ConstructorGuard pattern used by commands and
// value objects to reject zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their designated constructor functions. Embedding a ConstructorGuard in a
// struct makes a zero-value instance detectable: the internal flag is only set
// by NewConstructorGuard, so any struct assembled without the constructor
// fails validation.
//
// Example usage:
//
//	var ErrTimeSlotNotConstructed = errors.New("TimeSlot must be created via NewTimeSlot")
//
//	type TimeSlot struct {
//	    day   string
//	    start string
//	    end   string
//	    guard guard.ConstructorGuard
//	}
//
//	func (s TimeSlot) Validate() error {
//	    return s.guard.Validate(ErrTimeSlotNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
// Returns nil for constructed objects, the provided validationError for zero
// values, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
