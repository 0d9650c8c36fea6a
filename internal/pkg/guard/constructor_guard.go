// Package guard provides the constructor guard embedded by value objects, entities and
// use-case commands so that zero values are rejected by their Validate methods.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. The zero value is
// "not constructed", so any struct literal that skips the constructor fails Validate.
//
// Example:
//
//	type Tender struct {
//	    cash  kernel.Money
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTender(cash kernel.Money) Tender {
//	    return Tender{cash: cash, guard: guard.NewConstructorGuard()}
//	}
//
//	func (t Tender) Validate() error {
//	    return t.guard.Validate(ErrTenderIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
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
