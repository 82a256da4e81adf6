// Package guard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a ConstructorGuard in a
// struct makes zero-value instances detectable, so validation can reject
// objects that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// treated as not constructed, so any struct created without its constructor
// fails Validate.
//
// Example usage:
//
//	var ErrRecipeNotConstructed = errors.New("Recipe must be created via NewRecipe")
//
//	type Recipe struct {
//	    drink string
//	    shots int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRecipe(drink string, shots int) (Recipe, error) {
//	    if drink == "" {
//	        return Recipe{}, errors.New("drink is required")
//	    }
//	    return Recipe{
//	        drink: drink,
//	        shots: shots,
//	        guard: guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (r Recipe) Validate() error {
//	    return r.guard.Validate(ErrRecipeNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// properly constructed. Call it from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// For zero-value guards it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
