package cart

import (
	"errors"

	"czone-store/internal/product"
)

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrNilProduct      = errors.New("product is required")

	// -- Resource State --
	ErrProductNotInCart  = errors.New("product not found in cart")
	ErrInsufficientStock = product.ErrInsufficientStock

	// -- Checkout --
	ErrNoHistory = errors.New("cart has no order history attached")
)
