package services

import (
	"context"

	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/ports"
	"survey-backend/domain/core/entities"
)

// SurveyService manages surveys. Delete is a soft delete; there is no way to
// remove a survey.
type SurveyService struct {
	crud[entities.Survey]
	stores ports.Stores
	opts   Options
}

func NewSurveyService(stores ports.Stores, opts Options, logger *zap.Logger) *SurveyService {
	opts = opts.withDefaults()
	return &SurveyService{
		crud:   newCrud(stores.Surveys, opts.Clock, logger),
		stores: stores,
		opts:   opts,
	}
}

// Get returns the survey with every reference that resolves expanded.
// A reference that fails to load is logged and left unexpanded.
func (s *SurveyService) Get(ctx context.Context, id string) (*entities.SurveyDetail, error) {
	survey, err := s.get(ctx, id)
	if err != nil || survey == nil {
		return nil, err
	}
	return s.expand(ctx, survey), nil
}

func (s *SurveyService) expand(ctx context.Context, survey *entities.Survey) *entities.SurveyDetail {
	detail := &entities.SurveyDetail{Survey: survey}
	detail.Customer = lookup(ctx, s, s.stores.Customers, deref(survey.CustomerID))
	detail.Property = lookup(ctx, s, s.stores.Properties, deref(survey.PropertyID))
	detail.SurveyType = lookup(ctx, s, s.stores.SurveyTypes, deref(survey.SurveyTypeID))
	detail.Status = lookup(ctx, s, s.stores.SurveyStatuses, survey.SurveyStatusID)
	return detail
}

func lookup[T any](ctx context.Context, s *SurveyService, store ports.Store[T], id string) *T {
	if id == "" {
		return nil
	}
	ref, err := store.Get(ctx, id)
	if err != nil {
		s.logger.Warn("Failed to expand survey reference",
			zap.String("reference", store.Name()),
			zap.String("id", id),
			zap.Error(err),
		)
		return nil
	}
	return ref
}

// List searches SurveyNumber and Notes.
func (s *SurveyService) List(ctx context.Context, p dto.ListParams) (*dto.Page[entities.Survey], error) {
	return s.list(ctx, p, query[entities.Survey]{
		match: func(sv *entities.Survey, term string) bool {
			return containsAny(term, sv.SurveyNumber, deref(sv.Notes))
		},
	})
}

// Create requires a survey number and a status under either name. The status
// is stored under both names.
func (s *SurveyService) Create(ctx context.Context, in *dto.SurveyCreate) (*entities.Survey, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	survey := entities.NewSurvey(in.SurveyNumber, in.Status(), s.clock(), s.opts.Principal)
	in.Fill(survey)

	created, err := s.create(ctx, survey)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Survey created", zap.String("id", survey.SurveyID), zap.String("number", survey.SurveyNumber))
	return created, nil
}

func (s *SurveyService) Update(ctx context.Context, id string, in *dto.SurveyUpdate) (*entities.Survey, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(sv *entities.Survey) error {
		in.Apply(sv)
		sv.ReconcileStatus()
		sv.TouchBy(s.clock(), s.opts.Principal)
		return nil
	})
}

func (s *SurveyService) Delete(ctx context.Context, id string) (bool, error) {
	sv, err := s.update(ctx, id, func(sv *entities.Survey) error {
		sv.Deactivate(s.clock(), s.opts.Principal)
		return nil
	})
	return sv != nil, err
}
