package product

import (
	"context"
	"strings"

	"czone-store/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service is the admin-facing catalog API.
type Service interface {
	Create(ctx context.Context, params NewProductParams) (*Product, error)
	Remove(ctx context.Context, id int) error
	Update(ctx context.Context, id int, params UpdateProductParams) (*Product, error)
	List(ctx context.Context) []*Product
	GetByID(ctx context.Context, id int) (*Product, error)
	GetByName(ctx context.Context, name string) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates params and appends a product with the next free id.
func (s *service) Create(ctx context.Context, params NewProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be blank"}
	}
	if err := validatePrice(params.Price); err != nil {
		return nil, err
	}
	if err := validateStock(params.Quantity); err != nil {
		return nil, err
	}

	p := &Product{
		ID:          s.repo.NextID(),
		Name:        name,
		Price:       params.Price,
		Description: params.Description,
		Quantity:    params.Quantity,
	}
	s.repo.Add(p)

	log.Info("product created",
		zap.Int("product_id", p.ID),
		zap.String("name", p.Name),
		zap.String("price", p.Price.String()),
		zap.Int("quantity", p.Quantity),
	)
	return p, nil
}

func (s *service) Remove(ctx context.Context, id int) error {
	log := logger.FromCtx(ctx).With(zap.Int("product_id", id))

	if n := s.repo.Remove(id); n == 0 {
		log.Warn("remove product: not found")
		return ErrProductNotFound
	}

	log.Info("product removed")
	return nil
}

// Update applies the non-nil fields of params in place, so carts holding the
// product see the new values.
func (s *service) Update(ctx context.Context, id int, params UpdateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(zap.Int("product_id", id))

	if params.empty() {
		return nil, ErrNothingToUpdate
	}

	p, ok := s.repo.FindByID(id)
	if !ok {
		log.Warn("update product: not found")
		return nil, ErrProductNotFound
	}

	// validate everything before touching the shared product
	var name string
	if params.Name != nil {
		name = strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, &ValidationError{Field: "name", Reason: "must not be blank"}
		}
	}
	if params.Price != nil {
		if err := validatePrice(*params.Price); err != nil {
			return nil, err
		}
	}
	if params.Quantity != nil {
		if err := validateStock(*params.Quantity); err != nil {
			return nil, err
		}
	}

	if params.Name != nil {
		p.Name = name
	}
	if params.Price != nil {
		p.Price = *params.Price
	}
	if params.Description != nil {
		p.Description = *params.Description
	}
	if params.Quantity != nil {
		p.Quantity = *params.Quantity
	}

	log.Info("product updated",
		zap.String("name", p.Name),
		zap.String("price", p.Price.String()),
		zap.Int("quantity", p.Quantity),
	)
	return p, nil
}

func (s *service) List(ctx context.Context) []*Product {
	return s.repo.List()
}

func (s *service) GetByID(ctx context.Context, id int) (*Product, error) {
	p, ok := s.repo.FindByID(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) GetByName(ctx context.Context, name string) (*Product, error) {
	p, ok := s.repo.FindByName(name)
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

func validateStock(qty int) error {
	if qty < 0 {
		return &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	return nil
}
