package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a line copied out of the cart at checkout. It does not reference the
// live catalog product, so later price or stock edits leave it unchanged.
type Item struct {
	ProductID   int
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
}

func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Owner identifies the user an order belongs to.
type Owner struct {
	UserID   int
	Username string
}

// Order is an immutable checkout snapshot. All state is set by New.
type Order struct {
	id       uuid.UUID
	owner    Owner
	items    []Item
	total    decimal.Decimal
	placedAt time.Time
}

// New builds an order from a copy of items.
func New(owner Owner, items []Item, total decimal.Decimal, placedAt time.Time) *Order {
	cp := make([]Item, len(items))
	copy(cp, items)
	return &Order{
		id:       uuid.New(),
		owner:    owner,
		items:    cp,
		total:    total,
		placedAt: placedAt,
	}
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) Owner() Owner           { return o.owner }
func (o *Order) Total() decimal.Decimal { return o.total }
func (o *Order) PlacedAt() time.Time    { return o.placedAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	cp := make([]Item, len(o.items))
	copy(cp, o.items)
	return cp
}

// Empty reports whether the order was placed from an empty cart.
func (o *Order) Empty() bool {
	return len(o.items) == 0
}
