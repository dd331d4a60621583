package services

import (
	"context"

	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/ports"
	"survey-backend/domain/core/entities"
)

// PropertyService manages properties. Unlike the other entities, deleting a
// property removes it.
type PropertyService struct {
	crud[entities.Property]
	townships ports.Store[entities.Township]
	opts      Options
}

func NewPropertyService(store ports.Store[entities.Property], townships ports.Store[entities.Township], opts Options, logger *zap.Logger) *PropertyService {
	opts = opts.withDefaults()
	return &PropertyService{
		crud:      newCrud(store, opts.Clock, logger),
		townships: townships,
		opts:      opts,
	}
}

// Get returns the property with its township expanded when the reference
// resolves.
func (s *PropertyService) Get(ctx context.Context, id string) (*entities.PropertyDetail, error) {
	p, err := s.get(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	detail := &entities.PropertyDetail{Property: p}
	if ref := deref(p.TownshipID); ref != "" {
		t, err := s.townships.Get(ctx, ref)
		if err != nil {
			s.logger.Warn("Failed to expand township", zap.String("id", id), zap.Error(err))
		}
		detail.Township = t
	}
	return detail, nil
}

// List searches PropertyName, PropertyCode and OwnerName.
func (s *PropertyService) List(ctx context.Context, p dto.ListParams) (*dto.Page[entities.Property], error) {
	return s.list(ctx, p, query[entities.Property]{
		match: func(pr *entities.Property, term string) bool {
			return containsAny(term, pr.PropertyName, pr.PropertyCode, deref(pr.OwnerName))
		},
	})
}

func (s *PropertyService) Create(ctx context.Context, in *dto.PropertyCreate) (*entities.Property, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	p := entities.NewProperty(in.PropertyCode, in.PropertyName, s.clock(), s.opts.Principal)
	in.Fill(p)
	return s.create(ctx, p)
}

func (s *PropertyService) Update(ctx context.Context, id string, in *dto.PropertyUpdate) (*entities.Property, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(p *entities.Property) error {
		in.Apply(p)
		p.TouchBy(s.clock(), s.opts.Principal)
		return nil
	})
}

// Delete removes the property and reports whether it existed.
func (s *PropertyService) Delete(ctx context.Context, id string) (bool, error) {
	return s.remove(ctx, id)
}
