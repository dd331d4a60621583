package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/ports"
	"survey-backend/domain/core/entities"
)

// LookupService manages the survey type and status reference lists. Deleting
// either only clears IsActive, because surveys keep referring to them.
type LookupService struct {
	types    crud[entities.SurveyType]
	statuses crud[entities.SurveyStatus]
	opts     Options
}

func NewLookupService(types ports.Store[entities.SurveyType], statuses ports.Store[entities.SurveyStatus], opts Options, logger *zap.Logger) *LookupService {
	opts = opts.withDefaults()
	return &LookupService{
		types:    newCrud(types, opts.Clock, logger),
		statuses: newCrud(statuses, opts.Clock, logger),
		opts:     opts,
	}
}

// allItems is a window wide enough for any reference list.
var allItems = dto.ListParams{Limit: dto.MaxLimit}

// SurveyTypes returns the active survey types ordered by name.
func (s *LookupService) SurveyTypes(ctx context.Context) ([]*entities.SurveyType, error) {
	page, err := s.types.list(ctx, allItems, query[entities.SurveyType]{
		keep: func(t *entities.SurveyType) bool { return t.IsActive },
		less: func(a, b *entities.SurveyType) bool {
			return strings.ToLower(a.SurveyTypeName) < strings.ToLower(b.SurveyTypeName)
		},
	})
	return page.Items, err
}

func (s *LookupService) SurveyType(ctx context.Context, id string) (*entities.SurveyType, error) {
	return s.types.get(ctx, id)
}

func (s *LookupService) CreateSurveyType(ctx context.Context, in *dto.SurveyTypeCreate) (*entities.SurveyType, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	t := entities.NewSurveyType(in.SurveyTypeName, s.opts.Clock())
	in.Fill(t)
	return s.types.create(ctx, t)
}

func (s *LookupService) UpdateSurveyType(ctx context.Context, id string, in *dto.SurveyTypeUpdate) (*entities.SurveyType, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return s.types.update(ctx, id, func(t *entities.SurveyType) error {
		in.Apply(t)
		t.Touch(s.opts.Clock())
		return nil
	})
}

func (s *LookupService) DeleteSurveyType(ctx context.Context, id string) (bool, error) {
	t, err := s.types.update(ctx, id, func(t *entities.SurveyType) error {
		t.IsActive = false
		t.Touch(s.opts.Clock())
		return nil
	})
	return t != nil, err
}

// SurveyStatuses returns the active statuses in workflow order.
func (s *LookupService) SurveyStatuses(ctx context.Context) ([]*entities.SurveyStatus, error) {
	page, err := s.statuses.list(ctx, allItems, query[entities.SurveyStatus]{
		keep: func(st *entities.SurveyStatus) bool { return st.IsActive },
		less: func(a, b *entities.SurveyStatus) bool {
			if a.SortOrder != b.SortOrder {
				return a.SortOrder < b.SortOrder
			}
			return strings.ToLower(a.StatusName) < strings.ToLower(b.StatusName)
		},
	})
	return page.Items, err
}

func (s *LookupService) SurveyStatus(ctx context.Context, id string) (*entities.SurveyStatus, error) {
	return s.statuses.get(ctx, id)
}

// CreateSurveyStatus appends the status to the end of the workflow unless a
// SortOrder is given.
func (s *LookupService) CreateSurveyStatus(ctx context.Context, in *dto.SurveyStatusCreate) (*entities.SurveyStatus, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	order := 0
	if in.SortOrder != nil {
		order = *in.SortOrder
	} else {
		existing, err := s.statuses.scan(ctx)
		if err != nil {
			return nil, err
		}
		for _, st := range existing {
			if st.SortOrder > order {
				order = st.SortOrder
			}
		}
		order++
	}
	st := entities.NewSurveyStatus(in.StatusName, order, s.opts.Clock())
	in.Fill(st)
	return s.statuses.create(ctx, st)
}

func (s *LookupService) UpdateSurveyStatus(ctx context.Context, id string, in *dto.SurveyStatusUpdate) (*entities.SurveyStatus, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return s.statuses.update(ctx, id, func(st *entities.SurveyStatus) error {
		in.Apply(st)
		st.Touch(s.opts.Clock())
		return nil
	})
}

func (s *LookupService) DeleteSurveyStatus(ctx context.Context, id string) (bool, error) {
	st, err := s.statuses.update(ctx, id, func(st *entities.SurveyStatus) error {
		st.IsActive = false
		st.Touch(s.opts.Clock())
		return nil
	})
	return st != nil, err
}
