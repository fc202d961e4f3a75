package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error. This ensures validation always fails with a
// meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. By embedding a ConstructorGuard in a
// struct, the struct can detect whether it was properly initialized through its
// constructor or left as a zero value.
//
// Example usage:
//
//	var ErrFiltersNotConstructed = errors.New("Filters must be created via NewFilters")
//
//	type Filters struct {
//	    maxPrice float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewFilters(maxPrice float64) (Filters, error) {
//	    if maxPrice < 0 {
//	        return Filters{}, errors.New("maxPrice cannot be negative")
//	    }
//	    return Filters{maxPrice: maxPrice, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (f Filters) Validate() error {
//	    return f.guard.Validate(ErrFiltersNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of domain objects so they can be
// distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// designated constructor. Returns the provided validation error for zero-value
// instances, or ErrDefaultConstructorGuard if validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
