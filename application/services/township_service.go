package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/ports"
	"survey-backend/domain/core/entities"
)

// TownshipService manages townships. Lists hold active townships ordered by
// name, ignoring case; delete is a soft delete.
type TownshipService struct {
	crud[entities.Township]
	opts Options
}

func NewTownshipService(store ports.Store[entities.Township], opts Options, logger *zap.Logger) *TownshipService {
	opts = opts.withDefaults()
	return &TownshipService{
		crud: newCrud(store, opts.Clock, logger),
		opts: opts,
	}
}

func (s *TownshipService) Get(ctx context.Context, id string) (*entities.Township, error) {
	return s.get(ctx, id)
}

// List searches TownshipName, County and State.
func (s *TownshipService) List(ctx context.Context, p dto.ListParams) (*dto.Page[entities.Township], error) {
	return s.list(ctx, p, query[entities.Township]{
		keep: func(t *entities.Township) bool { return t.IsActive },
		match: func(t *entities.Township, term string) bool {
			return containsAny(term, t.TownshipName, t.County, t.State)
		},
		less: func(a, b *entities.Township) bool {
			return strings.ToLower(a.TownshipName) < strings.ToLower(b.TownshipName)
		},
	})
}

func (s *TownshipService) Create(ctx context.Context, in *dto.TownshipCreate) (*entities.Township, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	t := entities.NewTownship(in.TownshipName, in.County, in.State, s.clock(), s.opts.Principal)
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	return s.create(ctx, t)
}

func (s *TownshipService) Update(ctx context.Context, id string, in *dto.TownshipUpdate) (*entities.Township, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(t *entities.Township) error {
		in.Apply(t)
		t.TouchBy(s.clock(), s.opts.Principal)
		return nil
	})
}

func (s *TownshipService) Delete(ctx context.Context, id string) (bool, error) {
	t, err := s.update(ctx, id, func(t *entities.Township) error {
		t.Deactivate(s.clock(), s.opts.Principal)
		return nil
	})
	return t != nil, err
}
