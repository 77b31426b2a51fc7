package product

import (
	"github.com/shopspring/decimal"
)

// Product is a purchasable catalog entry. Catalog and cart lines share the same
// *Product, so Quantity is the single live stock counter.
type Product struct {
	ID          int
	Name        string
	Price       decimal.Decimal
	Description string
	Quantity    int
}

// NewProductParams carries the admin input for a new catalog entry.
type NewProductParams struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Quantity    int
}

// UpdateProductParams holds optional edits; nil fields keep the current value.
type UpdateProductParams struct {
	Name        *string
	Price       *decimal.Decimal
	Description *string
	Quantity    *int
}

// Equal reports whether both products carry the same id.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID
}

// Reserve takes qty units out of stock.
func (p *Product) Reserve(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > p.Quantity {
		return ErrInsufficientStock
	}
	p.Quantity -= qty
	return nil
}

// Release puts qty units back into stock.
func (p *Product) Release(qty int) {
	if qty <= 0 {
		return
	}
	p.Quantity += qty
}

func (u UpdateProductParams) empty() bool {
	return u.Name == nil && u.Price == nil && u.Description == nil && u.Quantity == nil
}
