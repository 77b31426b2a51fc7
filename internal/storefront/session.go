package storefront

import (
	"context"
	"fmt"

	"czone-store/internal/cart"
	"czone-store/internal/logger"
	"czone-store/internal/product"
	"czone-store/internal/user"
)

// CustomerSession drives one customer's cart until logout.
type CustomerSession struct {
	id    string
	store *Store
	user  *user.User
	cart  *cart.Cart
}

func (cs *CustomerSession) User() *user.User { return cs.user }

func (cs *CustomerSession) ctx(ctx context.Context) context.Context {
	return logger.WithSessionID(ctx, cs.id)
}

func (cs *CustomerSession) ViewProducts(ctx context.Context) Result {
	return cs.store.ListAll(cs.ctx(ctx))
}

func (cs *CustomerSession) ViewCart(ctx context.Context) Result {
	return ok(cs.store.render.Cart(cs.cart))
}

func (cs *CustomerSession) AddToCart(ctx context.Context, productID, quantity int) Result {
	ctx = cs.ctx(ctx)

	p, err := cs.store.products.GetByID(ctx, productID)
	if err != nil {
		return fromError(err)
	}
	if err := cs.cart.Add(ctx, p, quantity); err != nil {
		return fromError(err)
	}
	return ok(fmt.Sprintf("Added %d x %s to cart", quantity, p.Name))
}

// RemoveFromCart removes the first line for productID. A nil quantity removes
// the whole line.
func (cs *CustomerSession) RemoveFromCart(ctx context.Context, productID int, quantity *int) Result {
	ctx = cs.ctx(ctx)

	var (
		res cart.Removal
		err error
	)
	if quantity == nil {
		res, err = cs.cart.Remove(ctx, productID)
	} else {
		res, err = cs.cart.RemoveQuantity(ctx, productID, *quantity)
	}
	if err != nil {
		return fromError(err)
	}

	switch {
	case res.Partial():
		return Result{
			Status: StatusNotice,
			Message: fmt.Sprintf("You tried to remove %d, but only %d were in the cart. All items removed.",
				res.Requested, res.Released),
		}
	case res.LineRemoved():
		return ok(fmt.Sprintf("Removed %d item(s) from cart", res.Released))
	default:
		return ok(fmt.Sprintf("Removed %d item(s) from cart, %d left on that line", res.Released, res.Remaining))
	}
}

// Checkout always places an order, even for an empty cart.
func (cs *CustomerSession) Checkout(ctx context.Context) Result {
	o, err := cs.cart.Checkout(cs.ctx(ctx))
	if err != nil {
		return fromError(err)
	}
	cs.store.stats.Orders.Inc()
	details := cs.store.render.Order(o)
	if o.Empty() {
		return Result{Status: StatusNotice, Message: "Your cart was empty; a zero-total order was recorded\n" + details}
	}
	return ok("Order placed successfully\n" + details)
}

func (cs *CustomerSession) ViewHistory(ctx context.Context) Result {
	return ok(cs.store.render.History(cs.user.History.Orders()))
}

// AdminSession exposes catalog management.
type AdminSession struct {
	id    string
	store *Store
	user  *user.User
}

func (as *AdminSession) User() *user.User { return as.user }

func (as *AdminSession) ctx(ctx context.Context) context.Context {
	return logger.WithSessionID(ctx, as.id)
}

func (as *AdminSession) AddProduct(ctx context.Context, params product.NewProductParams) Result {
	p, err := as.store.products.Create(as.ctx(ctx), params)
	if err != nil {
		return fromError(err)
	}
	return ok(fmt.Sprintf("Product added successfully (ID %d)", p.ID))
}

// RemoveProduct drops the product from the catalog. Carts that reserved it keep
// their lines.
func (as *AdminSession) RemoveProduct(ctx context.Context, productID int) Result {
	if err := as.store.products.Remove(as.ctx(ctx), productID); err != nil {
		return fromError(err)
	}
	return ok("Product removed successfully")
}

func (as *AdminSession) UpdateProduct(ctx context.Context, productID int, params product.UpdateProductParams) Result {
	if _, err := as.store.products.Update(as.ctx(ctx), productID, params); err != nil {
		return fromError(err)
	}
	return ok("Product updated successfully")
}

func (as *AdminSession) ListAll(ctx context.Context) Result {
	return as.store.ListAll(as.ctx(ctx))
}
