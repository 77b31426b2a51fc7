package product

import (
	"errors"
	"fmt"
)

var (
	// -- Resource State --
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock available")

	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrNothingToUpdate = errors.New("no product fields to update")

	// -- Seed --
	ErrInvalidSeed = errors.New("invalid catalog seed")
)

// ValidationError reports a rejected product field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
