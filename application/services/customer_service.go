package services

import (
	"context"

	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/ports"
	"survey-backend/domain/core/entities"
)

// CustomerService manages customers. Delete is a soft delete.
type CustomerService struct {
	crud[entities.Customer]
	opts Options
}

// NewCustomerService creates a new customer service
func NewCustomerService(store ports.Store[entities.Customer], opts Options, logger *zap.Logger) *CustomerService {
	opts = opts.withDefaults()
	return &CustomerService{
		crud: newCrud(store, opts.Clock, logger),
		opts: opts,
	}
}

func (s *CustomerService) Get(ctx context.Context, id string) (*entities.Customer, error) {
	return s.get(ctx, id)
}

// List searches CompanyName, CustomerCode and Email.
func (s *CustomerService) List(ctx context.Context, p dto.ListParams) (*dto.Page[entities.Customer], error) {
	return s.list(ctx, p, query[entities.Customer]{
		match: func(c *entities.Customer, term string) bool {
			return containsAny(term, c.CompanyName, c.CustomerCode, deref(c.Email))
		},
	})
}

func (s *CustomerService) Create(ctx context.Context, in *dto.CustomerCreate) (*entities.Customer, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	c := entities.NewCustomer(in.CustomerCode, in.CompanyName, s.clock(), s.opts.Principal)
	in.Fill(c)

	created, err := s.create(ctx, c)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Customer created", zap.String("id", c.CustomerID), zap.String("code", c.CustomerCode))
	return created, nil
}

// Update merges in and refreshes ModifiedDate even when in is empty.
func (s *CustomerService) Update(ctx context.Context, id string, in *dto.CustomerUpdate) (*entities.Customer, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(c *entities.Customer) error {
		in.Apply(c)
		c.TouchBy(s.clock(), s.opts.Principal)
		return nil
	})
}

// Delete clears IsActive and reports whether the customer existed.
func (s *CustomerService) Delete(ctx context.Context, id string) (bool, error) {
	c, err := s.update(ctx, id, func(c *entities.Customer) error {
		c.Deactivate(s.clock(), s.opts.Principal)
		return nil
	})
	return c != nil, err
}
