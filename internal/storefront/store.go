package storefront

import (
	"context"
	"errors"
	"fmt"

	"czone-store/internal/logger"
	"czone-store/internal/metrics"
	"czone-store/internal/product"
	"czone-store/internal/user"

	"go.uber.org/zap"
)

// Store is the entry point the shell talks to. Every call returns a Result;
// none of them fail the process.
type Store struct {
	products product.Service
	users    user.Service
	render   *Renderer
	stats    *metrics.Storefront
}

type Option func(*Store)

func WithRenderer(r *Renderer) Option {
	return func(s *Store) {
		if r != nil {
			s.render = r
		}
	}
}

func New(products product.Service, users user.Service, opts ...Option) *Store {
	s := &Store{
		products: products,
		users:    users,
		render:   NewRenderer(false),
		stats:    &metrics.Storefront{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Renderer() *Renderer {
	return s.render
}

// Stats returns the counters for this run.
func (s *Store) Stats() *metrics.Storefront {
	return s.stats
}

// ListAll renders the whole catalog.
func (s *Store) ListAll(ctx context.Context) Result {
	return ok(s.render.Catalog(s.products.List(ctx)))
}

// CheckUsername tells the signup form whether a username can be used.
func (s *Store) CheckUsername(ctx context.Context, username string) Result {
	if s.users.UsernameExists(username) {
		return fromError(user.ErrUsernameExists)
	}
	if err := user.ValidateUsername(username); err != nil {
		return fromError(err)
	}
	return ok("")
}

func (s *Store) CreateCustomerAccount(ctx context.Context, params user.RegisterParams) Result {
	log := logger.FromCtx(ctx).With(zap.String("username", params.Username))

	if _, err := s.users.Register(ctx, params); err != nil {
		log.Warn("create customer account failed", zap.Error(err))
		return fromError(err)
	}
	s.stats.Signups.Inc()
	return ok("Customer account created successfully")
}

// CustomerLogin opens a customer session tagged with a fresh session id.
func (s *Store) CustomerLogin(ctx context.Context, username, password string) (*CustomerSession, Result) {
	ctx = logger.NewSession(ctx)

	u, err := s.login(ctx, user.RoleCustomer, username, password)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, fail(StatusNotFound, "Customer not found")
	}
	if err != nil {
		return nil, fromError(err)
	}

	c, hasCart := u.Cart()
	if !hasCart {
		return nil, fail(StatusFailed, "Customer has no cart")
	}
	return &CustomerSession{
		id:    logger.SessionIDFrom(ctx),
		store: s,
		user:  u,
		cart:  c,
	}, ok(fmt.Sprintf("Login successful! Welcome, %s.", u.FirstName))
}

// AdminLogin opens an admin session with catalog-management rights.
func (s *Store) AdminLogin(ctx context.Context, username, password string) (*AdminSession, Result) {
	ctx = logger.NewSession(ctx)

	u, err := s.login(ctx, user.RoleAdmin, username, password)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, fail(StatusNotFound, "Admin not found")
	}
	if err != nil {
		return nil, fromError(err)
	}
	return &AdminSession{
		id:    logger.SessionIDFrom(ctx),
		store: s,
		user:  u,
	}, ok("Admin login successful!")
}

func (s *Store) login(ctx context.Context, role user.Role, username, password string) (*user.User, error) {
	u, err := s.users.Login(ctx, role, username, password)
	if err != nil {
		s.stats.FailedLogins.Inc()
		return nil, err
	}
	s.stats.Logins.Inc()
	return u, nil
}

// ViewProduct renders a single catalog entry, or NotFound.
func (s *Store) ViewProduct(ctx context.Context, id int) Result {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return fromError(err)
	}
	return ok(s.render.Product(p))
}
