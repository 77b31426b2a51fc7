package order

// Ledger is an append-only, insertion-ordered order history.
type Ledger struct {
	orders []*Order
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Append(o *Order) error {
	if o == nil {
		return ErrNilOrder
	}
	l.orders = append(l.orders, o)
	return nil
}

// Orders returns the history oldest first.
func (l *Ledger) Orders() []*Order {
	out := make([]*Order, len(l.orders))
	copy(out, l.orders)
	return out
}

func (l *Ledger) Len() int {
	return len(l.orders)
}
