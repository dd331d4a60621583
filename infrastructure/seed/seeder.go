package seed

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"survey-backend/application/ports"
	"survey-backend/domain/core/entities"
	apperrors "survey-backend/pkg/errors"
	"survey-backend/pkg/utils"
)

// Result counts the records written per collection.
type Result struct {
	SurveyTypes    int
	SurveyStatuses int
	Townships      int
	Customers      int
	Properties     int
	Surveys        int
}

// Total is the sum over all collections.
func (r Result) Total() int {
	return r.SurveyTypes + r.SurveyStatuses + r.Townships + r.Customers + r.Properties + r.Surveys
}

// Seeder writes datasets into the configured stores.
type Seeder struct {
	stores ports.Stores
	clock  utils.Clock
	logger *zap.Logger
}

// NewSeeder creates a seeder. A nil clock means UTC now.
func NewSeeder(stores ports.Stores, clock utils.Clock, logger *zap.Logger) *Seeder {
	if clock == nil {
		clock = utils.UTCNow
	}
	return &Seeder{stores: stores, clock: clock, logger: logger}
}

// SeedReference inserts the reference survey types, statuses and townships.
// A record is skipped when one with the same name already exists, so running
// it twice writes nothing the second time.
func (s *Seeder) SeedReference(ctx context.Context) (*Dataset, Result, error) {
	var result Result
	ref := Reference(s.clock(), RandomIDs)

	types, n, err := insertMissing(ctx, s, s.stores.SurveyTypes, ref.SurveyTypes,
		func(t *entities.SurveyType) string { return t.SurveyTypeName })
	if err != nil {
		return nil, result, err
	}
	result.SurveyTypes = n

	statuses, n, err := insertMissing(ctx, s, s.stores.SurveyStatuses, ref.SurveyStatuses,
		func(st *entities.SurveyStatus) string { return st.StatusName })
	if err != nil {
		return nil, result, err
	}
	result.SurveyStatuses = n

	townships, n, err := insertMissing(ctx, s, s.stores.Townships, ref.Townships,
		func(t *entities.Township) string { return t.TownshipName })
	if err != nil {
		return nil, result, err
	}
	result.Townships = n

	s.logger.Info("Reference data seeded",
		zap.Int("survey_types", result.SurveyTypes),
		zap.Int("survey_statuses", result.SurveyStatuses),
		zap.Int("townships", result.Townships),
	)
	// The returned dataset is what the stores now hold, so sample data can
	// link to existing records.
	return &Dataset{SurveyTypes: types, SurveyStatuses: statuses, Townships: townships}, result, nil
}

// Load writes every record of d. Records whose identity is already taken
// are left alone.
func (s *Seeder) Load(ctx context.Context, d *Dataset) (Result, error) {
	var result Result
	var err error
	if result.SurveyTypes, err = createAll(ctx, s.stores.SurveyTypes, d.SurveyTypes); err != nil {
		return result, err
	}
	if result.SurveyStatuses, err = createAll(ctx, s.stores.SurveyStatuses, d.SurveyStatuses); err != nil {
		return result, err
	}
	if result.Townships, err = createAll(ctx, s.stores.Townships, d.Townships); err != nil {
		return result, err
	}
	if result.Customers, err = createAll(ctx, s.stores.Customers, d.Customers); err != nil {
		return result, err
	}
	if result.Properties, err = createAll(ctx, s.stores.Properties, d.Properties); err != nil {
		return result, err
	}
	if result.Surveys, err = createAll(ctx, s.stores.Surveys, d.Surveys); err != nil {
		return result, err
	}
	s.logger.Info("Dataset loaded", zap.Int("records", result.Total()))
	return result, nil
}

// insertMissing creates the records whose name is not yet present and
// returns the full resulting collection.
func insertMissing[T any](ctx context.Context, s *Seeder, store ports.Store[T], records []*T, name func(*T) string) ([]*T, int, error) {
	existing, err := store.Scan(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan %s: %w", store.Name(), err)
	}
	present := make(map[string]bool, len(existing))
	for _, e := range existing {
		present[strings.ToLower(name(e))] = true
	}

	created := 0
	for _, r := range records {
		if present[strings.ToLower(name(r))] {
			s.logger.Debug("Reference record exists", zap.String("table", store.Name()), zap.String("name", name(r)))
			continue
		}
		if err := store.Create(ctx, r); err != nil {
			return nil, created, fmt.Errorf("failed to seed %s %q: %w", store.Name(), name(r), err)
		}
		existing = append(existing, r)
		created++
	}
	return existing, created, nil
}

func createAll[T any](ctx context.Context, store ports.Store[T], records []*T) (int, error) {
	created := 0
	for _, r := range records {
		err := store.Create(ctx, r)
		switch {
		case err == nil:
			created++
		case apperrors.IsConflict(err):
			// already present
		default:
			return created, fmt.Errorf("failed to load %s: %w", store.Name(), err)
		}
	}
	return created, nil
}
