package cart

import (
	"context"
	"time"

	"czone-store/internal/logger"
	"czone-store/internal/order"
	"czone-store/internal/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Cart reserves catalog stock for one customer until checkout.
type Cart struct {
	id      uuid.UUID
	owner   order.Owner
	history *order.Ledger
	lines   []Line
	total   decimal.Decimal
	now     func() time.Time
}

type Option func(*Cart)

// WithClock overrides the checkout timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Cart) {
		if now != nil {
			c.now = now
		}
	}
}

// New returns an empty cart whose checkouts are appended to history.
func New(owner order.Owner, history *order.Ledger, opts ...Option) *Cart {
	c := &Cart{
		id:      uuid.New(),
		owner:   owner,
		history: history,
		total:   decimal.Zero,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cart) ID() uuid.UUID          { return c.id }
func (c *Cart) Owner() order.Owner     { return c.owner }
func (c *Cart) Total() decimal.Decimal { return c.total }
func (c *Cart) Len() int               { return len(c.lines) }
func (c *Cart) Empty() bool            { return len(c.lines) == 0 }

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Add reserves qty units of p and appends a new line. Repeated adds of the same
// product are not merged; each add is its own line.
func (c *Cart) Add(ctx context.Context, p *product.Product, qty int) error {
	log := c.log(ctx).With(zap.Int("quantity", qty))

	if p == nil {
		return ErrNilProduct
	}
	log = log.With(zap.Int("product_id", p.ID))

	if qty <= 0 {
		log.Warn("add to cart rejected: invalid quantity")
		return ErrInvalidQuantity
	}
	if err := p.Reserve(qty); err != nil {
		log.Warn("add to cart rejected", zap.Int("available", p.Quantity), zap.Error(err))
		return err
	}

	line := Line{Product: p, UnitPrice: p.Price, Quantity: qty}
	c.lines = append(c.lines, line)
	c.total = c.total.Add(line.Subtotal())

	log.Info("product added to cart",
		zap.Int("stock_left", p.Quantity),
		zap.String("cart_total", c.total.String()),
	)
	return nil
}

// Remove drops the first line for productID and restores its full quantity.
func (c *Cart) Remove(ctx context.Context, productID int) (Removal, error) {
	return c.remove(ctx, productID, 0)
}

// RemoveQuantity takes qty units off the first line for productID. A qty at or
// above the line quantity removes the line; anything beyond it is reported via
// Removal.Partial.
func (c *Cart) RemoveQuantity(ctx context.Context, productID, qty int) (Removal, error) {
	if qty <= 0 {
		return Removal{ProductID: productID, Requested: qty}, ErrInvalidQuantity
	}
	return c.remove(ctx, productID, qty)
}

func (c *Cart) remove(ctx context.Context, productID, qty int) (Removal, error) {
	log := c.log(ctx).With(zap.Int("product_id", productID), zap.Int("requested", qty))
	res := Removal{ProductID: productID, Requested: qty}

	idx := c.indexOf(productID)
	if idx < 0 {
		log.Warn("remove from cart rejected: not in cart")
		return res, ErrProductNotInCart
	}
	line := c.lines[idx]

	if qty == 0 || qty >= line.Quantity {
		line.Product.Release(line.Quantity)
		c.total = c.total.Sub(line.Subtotal())
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
		res.Released = line.Quantity
	} else {
		line.Product.Release(qty)
		c.total = c.total.Sub(line.UnitPrice.Mul(decimal.NewFromInt(int64(qty))))
		c.lines[idx].Quantity -= qty
		res.Released = qty
		res.Remaining = c.lines[idx].Quantity
	}

	log.Info("product removed from cart",
		zap.Int("released", res.Released),
		zap.Int("remaining", res.Remaining),
		zap.Bool("partial", res.Partial()),
		zap.String("cart_total", c.total.String()),
	)
	return res, nil
}

// Checkout moves the lines and total into a new order, appends it to the
// owner's history and empties the cart. Stock is not touched: reservations
// become the purchase. An empty cart still yields a zero-total order.
func (c *Cart) Checkout(ctx context.Context) (*order.Order, error) {
	log := c.log(ctx)

	if c.history == nil {
		return nil, ErrNoHistory
	}

	items := make([]order.Item, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, order.Item{
			ProductID:   l.Product.ID,
			Name:        l.Product.Name,
			Description: l.Product.Description,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
	}

	o := order.New(c.owner, items, c.total, c.now())
	if err := c.history.Append(o); err != nil {
		return nil, err
	}

	if o.Empty() {
		log.Warn("checkout of empty cart produced a zero-total order", zap.String("order_id", o.ID().String()))
	}

	c.lines = nil
	c.total = decimal.Zero

	log.Info("checkout completed",
		zap.String("order_id", o.ID().String()),
		zap.Int("items", len(items)),
		zap.String("total", o.Total().String()),
	)
	return o, nil
}

func (c *Cart) indexOf(productID int) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) log(ctx context.Context) *zap.Logger {
	return logger.FromCtx(ctx).With(
		zap.String("cart_id", c.id.String()),
		zap.String("username", c.owner.Username),
	)
}
