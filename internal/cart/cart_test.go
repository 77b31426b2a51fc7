package cart

import (
	"context"
	"testing"
	"time"

	"czone-store/internal/logger"
	"czone-store/internal/order"
	"czone-store/internal/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newProduct(id int, price int64, qty int) *product.Product {
	return &product.Product{ID: id, Name: "item", Price: decimal.NewFromInt(price), Quantity: qty}
}

func newCart(t *testing.T) (*Cart, *order.Ledger) {
	t.Helper()
	logger.Set(zap.NewNop())
	history := order.NewLedger()
	return New(order.Owner{UserID: 2, Username: "shopper01"}, history), history
}

func sumLines(c *Cart) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.Lines() {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestCart_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Reserves stock and grows total", func(t *testing.T) {
		c, _ := newCart(t)
		p := newProduct(1, 100, 10)

		require.NoError(t, c.Add(ctx, p, 4))

		assert.Equal(t, 6, p.Quantity)
		assert.True(t, c.Total().Equal(dec(400)), c.Total().String())
		require.Len(t, c.Lines(), 1)
		assert.Same(t, p, c.Lines()[0].Product)
		assert.Equal(t, 4, c.Lines()[0].Quantity)
	})

	t.Run("Whole stock can be reserved", func(t *testing.T) {
		c, _ := newCart(t)
		p := newProduct(1, 100, 3)

		require.NoError(t, c.Add(ctx, p, 3))
		assert.Equal(t, 0, p.Quantity)
	})

	t.Run("Same product twice makes two lines", func(t *testing.T) {
		c, _ := newCart(t)
		p := newProduct(1, 100, 10)

		require.NoError(t, c.Add(ctx, p, 1))
		require.NoError(t, c.Add(ctx, p, 2))

		require.Len(t, c.Lines(), 2)
		assert.Equal(t, 1, c.Lines()[0].Quantity)
		assert.Equal(t, 2, c.Lines()[1].Quantity)
		assert.Equal(t, 7, p.Quantity)
		assert.True(t, c.Total().Equal(dec(300)))
	})

	t.Run("Insufficient stock changes nothing", func(t *testing.T) {
		c, _ := newCart(t)
		p := newProduct(1, 100, 2)
		require.NoError(t, c.Add(ctx, p, 1))

		err := c.Add(ctx, p, 2)

		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 1, p.Quantity)
		assert.Len(t, c.Lines(), 1)
		assert.True(t, c.Total().Equal(dec(100)))
	})

	t.Run("Invalid input", func(t *testing.T) {
		c, _ := newCart(t)
		p := newProduct(1, 100, 2)

		assert.ErrorIs(t, c.Add(ctx, p, 0), ErrInvalidQuantity)
		assert.ErrorIs(t, c.Add(ctx, p, -3), ErrInvalidQuantity)
		assert.ErrorIs(t, c.Add(ctx, nil, 1), ErrNilProduct)
		assert.Equal(t, 2, p.Quantity)
		assert.True(t, c.Empty())
	})
}

func TestCart_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("Full line round trip is identity", func(t *testing.T) {
		c, _ := newCart(t)
		p := newProduct(1, 250, 18)
		other := newProduct(2, 30, 50)
		require.NoError(t, c.Add(ctx, other, 1))
		beforeTotal, beforeQty := c.Total(), p.Quantity

		require.NoError(t, c.Add(ctx, p, 5))
		res, err := c.Remove(ctx, 1)

		require.NoError(t, err)
		assert.True(t, res.LineRemoved())
		assert.False(t, res.Partial())
		assert.Equal(t, 5, res.Released)
		assert.Equal(t, beforeQty, p.Quantity)
		assert.True(t, c.Total().Equal(beforeTotal))
		assert.Len(t, c.Lines(), 1)
	})

	t.Run("Partial quantity keeps the line", func(t *testing.T) {
		c, _ := newCart(t)
		p := newProduct(1, 100, 10)
		require.NoError(t, c.Add(ctx, p, 4))

		res, err := c.RemoveQuantity(ctx, 1, 3)

		require.NoError(t, err)
		assert.False(t, res.LineRemoved())
		assert.Equal(t, 3, res.Released)
		assert.Equal(t, 1, res.Remaining)
		assert.Equal(t, 9, p.Quantity)
		require.Len(t, c.Lines(), 1)
		assert.Equal(t, 1, c.Lines()[0].Quantity)
		assert.True(t, c.Total().Equal(dec(100)))
	})

	t.Run("Exact quantity removes the line without notice", func(t *testing.T) {
		c, _ := newCart(t)
		p := newProduct(1, 100, 10)
		require.NoError(t, c.Add(ctx, p, 4))

		res, err := c.RemoveQuantity(ctx, 1, 4)

		require.NoError(t, err)
		assert.True(t, res.LineRemoved())
		assert.False(t, res.Partial())
		assert.True(t, c.Empty())
		assert.Equal(t, 10, p.Quantity)
	})

	t.Run("Over-request removes the line with a notice", func(t *testing.T) {
		c, _ := newCart(t)
		p := newProduct(1, 100, 10)
		require.NoError(t, c.Add(ctx, p, 2))

		res, err := c.RemoveQuantity(ctx, 1, 5)

		require.NoError(t, err)
		assert.True(t, res.LineRemoved())
		assert.True(t, res.Partial())
		assert.Equal(t, 3, res.Excess())
		assert.Equal(t, 2, res.Released)
		assert.Equal(t, 10, p.Quantity)
		assert.True(t, c.Total().IsZero())
	})

	t.Run("Only the first duplicate line is touched", func(t *testing.T) {
		c, _ := newCart(t)
		p := newProduct(1, 100, 10)
		require.NoError(t, c.Add(ctx, p, 1))
		require.NoError(t, c.Add(ctx, p, 3))

		_, err := c.Remove(ctx, 1)

		require.NoError(t, err)
		require.Len(t, c.Lines(), 1)
		assert.Equal(t, 3, c.Lines()[0].Quantity)
		assert.Equal(t, 7, p.Quantity)
		assert.True(t, c.Total().Equal(dec(300)))
	})

	t.Run("Unknown product", func(t *testing.T) {
		c, _ := newCart(t)
		p := newProduct(1, 100, 10)
		require.NoError(t, c.Add(ctx, p, 2))

		_, err := c.Remove(ctx, 99)
		assert.ErrorIs(t, err, ErrProductNotInCart)
		_, err = c.RemoveQuantity(ctx, 99, 1)
		assert.ErrorIs(t, err, ErrProductNotInCart)

		assert.Equal(t, 8, p.Quantity)
		assert.Len(t, c.Lines(), 1)
		assert.True(t, c.Total().Equal(dec(200)))
	})

	t.Run("Non-positive quantity", func(t *testing.T) {
		c, _ := newCart(t)
		p := newProduct(1, 100, 10)
		require.NoError(t, c.Add(ctx, p, 2))

		_, err := c.RemoveQuantity(ctx, 1, 0)

		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, 2, c.Lines()[0].Quantity)
	})
}

func TestCart_TotalMatchesLines(t *testing.T) {
	ctx := context.Background()
	c, _ := newCart(t)
	a := newProduct(1, 1000, 10)
	b := newProduct(2, 30, 50)
	half := &product.Product{ID: 3, Price: decimal.RequireFromString("0.10"), Quantity: 100}

	steps := []func() error{
		func() error { return c.Add(ctx, a, 2) },
		func() error { return c.Add(ctx, b, 7) },
		func() error { return c.Add(ctx, half, 3) },
		func() error { _, err := c.RemoveQuantity(ctx, 2, 4); return err },
		func() error { return c.Add(ctx, a, 1) },
		func() error { _, err := c.Remove(ctx, 1); return err },
		func() error { _, err := c.RemoveQuantity(ctx, 3, 1); return err },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		assert.True(t, c.Total().Equal(sumLines(c)), "step %d: total %s", i, c.Total())
	}
	assert.Equal(t, "1090.2", c.Total().String())
}

func TestCart_PriceEditAfterReserve(t *testing.T) {
	ctx := context.Background()
	c, _ := newCart(t)
	p := newProduct(1, 100, 10)
	require.NoError(t, c.Add(ctx, p, 2))

	p.Price = dec(150)
	_, err := c.RemoveQuantity(ctx, 1, 1)

	require.NoError(t, err)
	assert.True(t, c.Total().Equal(dec(100)))
	assert.True(t, c.Total().Equal(sumLines(c)))
}

func TestCart_Checkout(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Moves lines into an order", func(t *testing.T) {
		logger.Set(zap.NewNop())
		history := order.NewLedger()
		c := New(order.Owner{UserID: 2, Username: "shopper01"}, history, WithClock(func() time.Time { return at }))
		p := newProduct(1, 100, 10)
		require.NoError(t, c.Add(ctx, p, 3))
		before := c.Total()

		o, err := c.Checkout(ctx)

		require.NoError(t, err)
		assert.True(t, o.Total().Equal(before))
		assert.Equal(t, at, o.PlacedAt())
		assert.Equal(t, "shopper01", o.Owner().Username)
		require.Len(t, o.Items(), 1)
		assert.Equal(t, 3, o.Items()[0].Quantity)
		assert.True(t, c.Empty())
		assert.True(t, c.Total().IsZero())
		assert.Equal(t, 7, p.Quantity)
		assert.Equal(t, 1, history.Len())
		assert.Same(t, o, history.Orders()[0])
	})

	t.Run("Order keeps purchase-time values", func(t *testing.T) {
		c, _ := newCart(t)
		p := newProduct(1, 100, 10)
		require.NoError(t, c.Add(ctx, p, 1))

		o, err := c.Checkout(ctx)
		require.NoError(t, err)
		p.Price = dec(1)
		p.Name = "renamed"

		assert.True(t, o.Items()[0].UnitPrice.Equal(dec(100)))
		assert.Equal(t, "item", o.Items()[0].Name)
	})

	t.Run("Empty cart still yields an order", func(t *testing.T) {
		core, observed := observer.New(zapcore.WarnLevel)
		logger.Set(zap.New(core))
		history := order.NewLedger()
		c := New(order.Owner{UserID: 2}, history)

		o, err := c.Checkout(ctx)

		require.NoError(t, err)
		assert.True(t, o.Empty())
		assert.True(t, o.Total().IsZero())
		assert.Equal(t, 1, history.Len())
		assert.Equal(t, 1, observed.FilterMessageSnippet("empty cart").Len())
	})

	t.Run("Each checkout appends exactly one order", func(t *testing.T) {
		c, history := newCart(t)
		p := newProduct(1, 100, 10)

		for i := 1; i <= 3; i++ {
			require.NoError(t, c.Add(ctx, p, 1))
			_, err := c.Checkout(ctx)
			require.NoError(t, err)
			assert.Equal(t, i, history.Len())
		}
	})

	t.Run("No history attached", func(t *testing.T) {
		logger.Set(zap.NewNop())
		c := New(order.Owner{}, nil)
		p := newProduct(1, 100, 10)
		require.NoError(t, c.Add(ctx, p, 1))

		_, err := c.Checkout(ctx)

		assert.ErrorIs(t, err, ErrNoHistory)
		assert.Equal(t, 1, c.Len())
	})
}

func TestCart_Scenario(t *testing.T) {
	ctx := context.Background()
	c, history := newCart(t)
	p := newProduct(1, 100, 10)
	catalog := product.NewCatalog(p)

	shared, ok := catalog.FindByID(1)
	require.True(t, ok)
	require.NoError(t, c.Add(ctx, shared, 4))
	assert.True(t, c.Total().Equal(dec(400)))
	assert.Equal(t, 6, p.Quantity)

	_, err := c.RemoveQuantity(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Lines()[0].Quantity)
	assert.True(t, c.Total().Equal(dec(200)))
	assert.Equal(t, 8, p.Quantity)

	o, err := c.Checkout(ctx)
	require.NoError(t, err)
	assert.True(t, o.Total().Equal(dec(200)))
	assert.True(t, c.Total().IsZero())
	assert.Equal(t, 8, p.Quantity)
	assert.Equal(t, 1, history.Len())

	_, err = c.Remove(ctx, 99)
	assert.ErrorIs(t, err, ErrProductNotInCart)
}
