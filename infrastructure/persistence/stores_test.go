package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"survey-backend/domain/core/entities"
	"survey-backend/infrastructure/persistence/storage"
	apperrors "survey-backend/pkg/errors"
	"survey-backend/pkg/observability"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func unavailable() *storage.Connection {
	return storage.NewUnavailableConnection(storage.BackendDynamoDB, errors.New("connection refused"), zap.NewNop())
}

func TestNewStores_OfflineReadsServeMockDataset(t *testing.T) {
	// Arrange
	collector := observability.NewCollector("test")
	stores := NewStores(unavailable(), Settings{Offline: true, Clock: clock}, collector, nil, zap.NewNop())
	ctx := context.Background()

	// Act
	customers, err := stores.Customers.Scan(ctx)
	require.NoError(t, err)
	property, err := stores.Properties.Get(ctx, "1")
	require.NoError(t, err)

	// Assert
	require.Len(t, customers, 2)
	assert.Equal(t, "mock-customer-1", customers[0].CustomerID)
	require.NotNil(t, property)
	assert.Equal(t, "Mock Property 1", property.PropertyName)
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.OfflineReads.WithLabelValues("Customers")))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.StoreOperations.WithLabelValues("scan", "Customers", "unavailable")))
}

func TestNewStores_OfflineWritesStillFail(t *testing.T) {
	// Arrange
	stores := NewStores(unavailable(), Settings{Offline: true, Clock: clock}, nil, nil, zap.NewNop())
	customer := entities.NewCustomer("NEW", "New Co", now, "system")

	// Act
	err := stores.Customers.Create(context.Background(), customer)

	// Assert
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestNewStores_WithoutOfflineModeReportsUnavailable(t *testing.T) {
	// Arrange
	stores := NewStores(unavailable(), Settings{Clock: clock}, nil, nil, zap.NewNop())

	// Act
	surveys, err := stores.Surveys.Scan(context.Background())

	// Assert
	assert.Nil(t, surveys)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestNewStores_MemoryBackendStartsEmpty(t *testing.T) {
	// Arrange
	conn := storage.NewMemoryConnection(zap.NewNop())
	stores := NewStores(conn, Settings{Offline: true, Clock: clock}, nil, nil, zap.NewNop())

	// Act
	customers, err := stores.Customers.Scan(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Empty(t, customers)
	assert.Equal(t, "Customers", stores.Customers.Name())
}

func TestNewMockStores_SurveysLinkToMockRecords(t *testing.T) {
	// Arrange
	stores, err := NewMockStores(clock)
	require.NoError(t, err)
	ctx := context.Background()

	// Act
	surveys, err := stores.Surveys.Scan(ctx)
	require.NoError(t, err)

	// Assert
	require.Len(t, surveys, 2)
	for _, s := range surveys {
		customer, err := stores.Customers.Get(ctx, entities.Deref(s.CustomerID))
		require.NoError(t, err)
		assert.NotNil(t, customer)
		property, err := stores.Properties.Get(ctx, entities.Deref(s.PropertyID))
		require.NoError(t, err)
		assert.NotNil(t, property)
		status, err := stores.SurveyStatuses.Get(ctx, s.SurveyStatusID)
		require.NoError(t, err)
		assert.NotNil(t, status)
	}
}
