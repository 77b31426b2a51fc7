package user

import (
	"context"
	"errors"

	"czone-store/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (*User, error)
	Login(ctx context.Context, role Role, username, password string) (*User, error)
	EnsureAdmin(ctx context.Context, p Profile) (*User, bool, error)
	UsernameExists(username string) bool
}

type service struct {
	repo    Repository
	limiter *LoginLimiter
}

// NewService wires the account store. A nil limiter disables login throttling.
func NewService(repo Repository, limiter *LoginLimiter) Service {
	return &service{repo: repo, limiter: limiter}
}

// Register validates the signup form and persists a new customer.
func (s *service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	log := logger.FromCtx(ctx).With(zap.String("username", params.Username))

	if s.repo.UsernameExists(params.Username) {
		log.Warn("register rejected: username taken")
		return nil, ErrUsernameExists
	}
	if err := params.validate(); err != nil {
		log.Warn("register rejected: validation", zap.Error(err))
		return nil, err
	}

	u := NewCustomer(Profile{
		ID:        s.repo.NextID(),
		Username:  params.Username,
		Password:  params.Password,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Address:   params.Address,
	})
	if err := s.repo.Add(ctx, u); err != nil {
		log.Error("failed to persist customer", zap.Error(err))
		return nil, err
	}

	log.Info("customer registered", zap.Int("user_id", u.ID))
	return u, nil
}

// Login matches only users of the given role; a customer cannot log in through
// the admin entry and vice versa.
func (s *service) Login(ctx context.Context, role Role, username, password string) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("username", username),
		zap.String("role", string(role)),
	)
	key := string(role) + ":" + username

	if s.limiter.Blocked(key) {
		log.Warn("login throttled")
		return nil, ErrTooManyAttempts
	}

	u := s.findByRole(role, username)
	if u == nil {
		s.limiter.Fail(key)
		log.Warn("login failed: user not found")
		return nil, ErrUserNotFound
	}
	if u.Password != password {
		s.limiter.Fail(key)
		log.Warn("login failed: password mismatch")
		return nil, ErrInvalidCredentials
	}

	s.limiter.Reset(key)
	log.Info("login succeeded", zap.Int("user_id", u.ID))
	return u, nil
}

// EnsureAdmin adds an admin with the given profile unless the username is
// already taken. The bool reports whether a record was created.
func (s *service) EnsureAdmin(ctx context.Context, p Profile) (*User, bool, error) {
	log := logger.FromCtx(ctx).With(zap.String("username", p.Username))

	if existing, ok := s.repo.FindByUsername(p.Username); ok {
		if !existing.IsAdmin() {
			log.Warn("seed admin username belongs to a customer")
			return nil, false, ErrUsernameExists
		}
		return existing, false, nil
	}

	if p.ID <= 0 || s.idTaken(p.ID) {
		p.ID = s.repo.NextID()
	}
	u := NewAdmin(p)
	if err := s.repo.Add(ctx, u); err != nil {
		log.Error("failed to persist seed admin", zap.Error(err))
		return nil, false, err
	}

	log.Info("seed admin created", zap.Int("user_id", u.ID))
	return u, true, nil
}

func (s *service) UsernameExists(username string) bool {
	return s.repo.UsernameExists(username)
}

func (s *service) findByRole(role Role, username string) *User {
	for _, u := range s.repo.Users() {
		if u.Role == role && u.Username == username {
			return u
		}
	}
	return nil
}

func (s *service) idTaken(id int) bool {
	for _, u := range s.repo.Users() {
		if u.ID == id {
			return true
		}
	}
	return false
}

// IsValidation reports whether err is a signup field error.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
