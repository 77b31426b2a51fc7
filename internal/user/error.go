package user

import "errors"

var (
	// -- Authentication --
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts, try again later")
	ErrUsernameExists     = errors.New("username already exists")

	// -- Account file --
	ErrMalformedRecord       = errors.New("malformed account record")
	ErrAccountFileUnreadable = errors.New("account file could not be read, refusing to overwrite it")
)

// ValidationError reports a rejected signup field. Reason is user-facing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
