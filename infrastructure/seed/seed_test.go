package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"survey-backend/domain/core/entities"
	"survey-backend/infrastructure/persistence"
	"survey-backend/infrastructure/seed"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func TestReference(t *testing.T) {
	d := seed.Reference(now, seed.StableIDs)

	require.Len(t, d.SurveyTypes, 9)
	require.Len(t, d.SurveyStatuses, 10)
	require.Len(t, d.Townships, 10)
	assert.Equal(t, "mock-survey-type-1", d.SurveyTypes[0].SurveyTypeID)
	assert.Equal(t, "Requested", d.SurveyStatuses[0].StatusName)
	assert.Equal(t, 1, d.SurveyStatuses[0].SortOrder)
	assert.Equal(t, "FIELD_WORK_COMPLETE", *d.SurveyStatuses[2].StatusCode)
	assert.Equal(t, 10, d.SurveyStatuses[9].SortOrder)
	for _, tw := range d.Townships {
		assert.Equal(t, "Suffolk", tw.County)
		assert.Equal(t, "NY", tw.State)
	}
}

func TestSeeder_SeedReferenceIsIdempotent(t *testing.T) {
	// Arrange
	stores := persistence.NewMemoryStores(clock)
	seeder := seed.NewSeeder(stores, clock, zap.NewNop())
	ctx := context.Background()

	// Act
	_, first, err := seeder.SeedReference(ctx)
	require.NoError(t, err)
	ref, second, err := seeder.SeedReference(ctx)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 29, first.Total())
	assert.Equal(t, 0, second.Total())
	assert.Len(t, ref.SurveyTypes, 9)
	assert.Len(t, ref.SurveyStatuses, 10)
	assert.Len(t, ref.Townships, 10)
	all, err := stores.SurveyTypes.Scan(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 9)
}

func TestSeeder_SeedReferenceSkipsExistingNames(t *testing.T) {
	// Arrange
	stores := persistence.NewMemoryStores(clock)
	ctx := context.Background()
	require.NoError(t, stores.Townships.Create(ctx, entities.NewTownship("SOUTHOLD", "Suffolk", "NY", now, "")))
	seeder := seed.NewSeeder(stores, clock, zap.NewNop())

	// Act
	ref, result, err := seeder.SeedReference(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 9, result.Townships)
	assert.Len(t, ref.Townships, 10)
}

func TestSample_LinksToReference(t *testing.T) {
	// Arrange
	ref := seed.Reference(now, seed.StableIDs)

	// Act
	d := seed.Sample(now, ref, seed.StableIDs)

	// Assert
	require.Len(t, d.Customers, 8)
	require.Len(t, d.Properties, 8)
	require.Len(t, d.Surveys, seed.SampleSurveyCount)

	townships := map[string]bool{}
	for _, tw := range ref.Townships {
		townships[tw.TownshipID] = true
	}
	for _, p := range d.Properties {
		require.NotNil(t, p.TownshipID)
		assert.True(t, townships[*p.TownshipID], p.PropertyName)
	}
	for _, s := range d.Surveys {
		assert.Equal(t, s.SurveyStatusID, s.StatusID)
		assert.True(t, s.RequestDate.Time.Before(now))
		require.NotNil(t, s.QuotedPrice)
	}
	// Survey 8 rotates onto the eighth status, Completed.
	completed := d.Surveys[7]
	assert.Equal(t, ref.SurveyStatuses[7].SurveyStatusID, completed.SurveyStatusID)
	assert.True(t, completed.IsDelivered)
	assert.NotNil(t, completed.FinalPrice)
}

func TestSample_WithoutLookupsHasNoSurveys(t *testing.T) {
	d := seed.Sample(now, &seed.Dataset{}, seed.StableIDs)

	assert.Len(t, d.Customers, 8)
	assert.Empty(t, d.Surveys)
	assert.Nil(t, d.Properties[0].TownshipID)
}

func TestSeeder_LoadSkipsTakenIdentities(t *testing.T) {
	// Arrange
	stores := persistence.NewMemoryStores(clock)
	seeder := seed.NewSeeder(stores, clock, zap.NewNop())
	ctx := context.Background()
	d := seed.Mock(now)

	// Act
	first, err := seeder.Load(ctx, d)
	require.NoError(t, err)
	second, err := seeder.Load(ctx, d)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 2, first.Surveys)
	assert.Equal(t, 2, first.Customers)
	assert.Equal(t, 0, second.Total())
	got, err := stores.Properties.Get(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Mock Property 1", got.PropertyName)
}
