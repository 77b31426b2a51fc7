package order

import "errors"

var (
	ErrNilOrder = errors.New("order is nil")
)
