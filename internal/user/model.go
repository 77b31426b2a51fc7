package user

import (
	"czone-store/internal/cart"
	"czone-store/internal/order"
)

// Role tags the user variant. The set is closed: Customer or Admin.
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleAdmin    Role = "Admin"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// Profile is the persisted part of a user record.
type Profile struct {
	ID        int
	Username  string
	Password  string
	FirstName string
	LastName  string
	Address   string
}

// User is a Customer or an Admin. Customers own a cart whose checkouts land in
// History; admins never hold a cart.
type User struct {
	Profile
	Role    Role
	History *order.Ledger

	cart *cart.Cart
}

func NewCustomer(p Profile, opts ...cart.Option) *User {
	u := &User{Profile: p, Role: RoleCustomer, History: order.NewLedger()}
	u.cart = cart.New(order.Owner{UserID: p.ID, Username: p.Username}, u.History, opts...)
	return u
}

func NewAdmin(p Profile) *User {
	return &User{Profile: p, Role: RoleAdmin, History: order.NewLedger()}
}

// Cart returns the customer's cart; ok is false for admins.
func (u *User) Cart() (c *cart.Cart, ok bool) {
	if u.Role != RoleCustomer || u.cart == nil {
		return nil, false
	}
	return u.cart, true
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RegisterParams is the signup form of a new customer.
type RegisterParams struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Address   string
}
