package order

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SnapshotsItems(t *testing.T) {
	items := []Item{
		{ProductID: 1, Name: "Laptop", UnitPrice: decimal.NewFromInt(1000), Quantity: 2},
		{ProductID: 10, Name: "Mouse", UnitPrice: decimal.NewFromInt(30), Quantity: 1},
	}
	at := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

	o := New(Owner{UserID: 2, Username: "shopper01"}, items, decimal.NewFromInt(2030), at)

	assert.NotEqual(t, uuid.Nil, o.ID())
	assert.Equal(t, "shopper01", o.Owner().Username)
	assert.True(t, o.Total().Equal(decimal.NewFromInt(2030)))
	assert.Equal(t, at, o.PlacedAt())
	assert.False(t, o.Empty())

	// mutating the caller's slice or the returned copy does not reach the order
	items[0].Quantity = 99
	got := o.Items()
	got[1].Quantity = 42
	assert.Equal(t, 2, o.Items()[0].Quantity)
	assert.Equal(t, 1, o.Items()[1].Quantity)

	assert.True(t, o.Items()[0].Subtotal().Equal(decimal.NewFromInt(2000)))
}

func TestNew_EmptyOrder(t *testing.T) {
	o := New(Owner{UserID: 1}, nil, decimal.Zero, time.Now())

	assert.True(t, o.Empty())
	assert.Empty(t, o.Items())
	assert.True(t, o.Total().IsZero())
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New(Owner{}, nil, decimal.Zero, time.Now())
	b := New(Owner{}, nil, decimal.Zero, time.Now())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestLedger(t *testing.T) {
	l := NewLedger()
	assert.Equal(t, 0, l.Len())
	assert.ErrorIs(t, l.Append(nil), ErrNilOrder)

	first := New(Owner{UserID: 1}, nil, decimal.Zero, time.Now())
	second := New(Owner{UserID: 1}, nil, decimal.NewFromInt(5), time.Now())
	require.NoError(t, l.Append(first))
	require.NoError(t, l.Append(second))

	orders := l.Orders()
	require.Len(t, orders, 2)
	assert.Same(t, first, orders[0])
	assert.Same(t, second, orders[1])

	orders[0] = nil
	assert.Same(t, first, l.Orders()[0])
	assert.Equal(t, 2, l.Len())
}
