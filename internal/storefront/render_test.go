package storefront

import (
	"context"
	"strings"
	"testing"
	"time"

	"czone-store/internal/cart"
	"czone-store/internal/logger"
	"czone-store/internal/order"
	"czone-store/internal/product"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRenderer_CatalogGolden(t *testing.T) {
	r := NewRenderer(false)

	g := goldie.New(t)
	g.Assert(t, "catalog", []byte(r.Catalog(product.DefaultSeed())))
}

func TestRenderer_EmptyCatalog(t *testing.T) {
	assert.Equal(t, "No products available.", NewRenderer(false).Catalog(nil))
}

func TestRenderer_Colored(t *testing.T) {
	p := &product.Product{ID: 1, Name: "Laptop", Price: decimal.NewFromInt(1000), Quantity: 10}

	colored := NewRenderer(true).Product(p)
	plain := NewRenderer(false).Product(p)

	assert.True(t, strings.HasPrefix(colored, "\x1b["))
	assert.Contains(t, colored, plain)
	assert.False(t, strings.Contains(plain, "\x1b["))
}

func TestRenderer_CartAndOrder(t *testing.T) {
	logger.Set(zap.NewNop())
	ctx := context.Background()
	r := NewRenderer(false)
	at := time.Date(2026, 10, 15, 14, 5, 9, 0, time.UTC)
	history := order.NewLedger()
	c := cart.New(order.Owner{UserID: 2, Username: "shopper01"}, history, cart.WithClock(func() time.Time { return at }))

	assert.Equal(t, "Your cart is empty.\nTotal price: 0", r.Cart(c))

	p := &product.Product{ID: 9, Name: "Keyboard", Description: "Mechanical keyboard", Price: decimal.NewFromInt(50), Quantity: 40}
	require.NoError(t, c.Add(ctx, p, 2))

	assert.Equal(t,
		"Product ID: 9, Name: Keyboard, Description: Mechanical keyboard, Price: 50, Quantity: 38, Quantity you've added: 2\nTotal price: 100",
		r.Cart(c))

	o, err := c.Checkout(ctx)
	require.NoError(t, err)

	assert.Equal(t,
		"Order ID: "+o.ID().String()+", Date: 2026-10-15 14:05:09\n"+
			"Product ID: 9, Name: Keyboard, Description: Mechanical keyboard, Price: 50, Quantity you've purchased: 2\n"+
			"Total price: 100",
		r.Order(o))

	assert.Equal(t, "No orders yet.", r.History(nil))
	assert.Equal(t, r.Order(o)+"\n\n"+r.Order(o), r.History([]*order.Order{o, o}))
}

func TestRenderer_CartUsesReservedPrice(t *testing.T) {
	logger.Set(zap.NewNop())
	ctx := context.Background()
	r := NewRenderer(false)
	c := cart.New(order.Owner{UserID: 2, Username: "shopper01"}, order.NewLedger())
	p := &product.Product{ID: 1, Name: "Laptop", Description: "High performance laptop", Price: decimal.NewFromInt(100), Quantity: 10}
	require.NoError(t, c.Add(ctx, p, 2))

	p.Price = decimal.NewFromInt(150)

	assert.Equal(t,
		"Product ID: 1, Name: Laptop, Description: High performance laptop, Price: 100, Quantity: 8, Quantity you've added: 2\nTotal price: 200",
		r.Cart(c))
	assert.Contains(t, r.Product(p), "Price: 150")
}
