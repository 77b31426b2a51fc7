package storefront

import (
	"errors"

	"czone-store/internal/cart"
	"czone-store/internal/product"
	"czone-store/internal/user"
)

// Status classifies the outcome of a storefront call for the shell.
type Status string

const (
	StatusOK                Status = "ok"
	StatusNotice            Status = "notice"
	StatusInvalid           Status = "invalid"
	StatusNotFound          Status = "not_found"
	StatusInsufficientStock Status = "insufficient_stock"
	StatusDenied            Status = "denied"
	StatusFailed            Status = "failed"
)

// Result is what every entry point hands back: a status and a message ready to
// print. Notices count as success.
type Result struct {
	Status  Status
	Message string
}

func (r Result) OK() bool {
	return r.Status == StatusOK || r.Status == StatusNotice
}

func ok(msg string) Result {
	return Result{Status: StatusOK, Message: msg}
}

func fail(status Status, msg string) Result {
	return Result{Status: status, Message: msg}
}

// fromError maps domain errors onto results. Unknown errors become StatusFailed.
func fromError(err error) Result {
	var productErr *product.ValidationError

	switch {
	case err == nil:
		return ok("")
	case errors.Is(err, cart.ErrInsufficientStock):
		return fail(StatusInsufficientStock, "Insufficient stock available")
	case errors.Is(err, product.ErrProductNotFound):
		return fail(StatusNotFound, "Product not found")
	case errors.Is(err, cart.ErrProductNotInCart):
		return fail(StatusNotFound, "Product not found in cart")
	case errors.Is(err, cart.ErrInvalidQuantity), errors.Is(err, product.ErrInvalidQuantity):
		return fail(StatusInvalid, "Quantity must be a positive number")
	case errors.Is(err, product.ErrNothingToUpdate):
		return fail(StatusInvalid, "Nothing to update")
	case errors.As(err, &productErr):
		return fail(StatusInvalid, "Invalid input: "+productErr.Error())
	case user.IsValidation(err):
		return fail(StatusInvalid, err.Error())
	case errors.Is(err, user.ErrUsernameExists):
		return fail(StatusDenied, "Username already exists. Please enter a different username.")
	case errors.Is(err, user.ErrTooManyAttempts):
		return fail(StatusDenied, "Too many failed login attempts. Please try again later.")
	case errors.Is(err, user.ErrInvalidCredentials):
		return fail(StatusDenied, "Invalid credentials")
	case errors.Is(err, user.ErrAccountFileUnreadable):
		return fail(StatusFailed, "Accounts are unavailable: the account file could not be read")
	default:
		return fail(StatusFailed, "Something went wrong: "+err.Error())
	}
}
