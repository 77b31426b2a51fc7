package cart

import (
	"czone-store/internal/product"

	"github.com/shopspring/decimal"
)

// Line is one reservation: a shared catalog product and the units held for it.
// UnitPrice is the price at reservation time, which keeps the cart total equal
// to the sum of its lines even if an admin edits the product price later.
type Line struct {
	Product   *product.Product
	UnitPrice decimal.Decimal
	Quantity  int
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Removal describes what a remove call did to the first matching line.
type Removal struct {
	ProductID int
	// Requested is 0 when the caller asked for the whole line.
	Requested int
	Released  int
	Remaining int
}

// LineRemoved reports whether the whole line left the cart.
func (r Removal) LineRemoved() bool {
	return r.Remaining == 0
}

// Excess is how many requested units were not in the line.
func (r Removal) Excess() int {
	if r.Requested > r.Released {
		return r.Requested - r.Released
	}
	return 0
}

// Partial reports a request larger than the line: the whole line went and the
// rest of the request was ignored. It is a notice, not an error.
func (r Removal) Partial() bool {
	return r.Excess() > 0
}
