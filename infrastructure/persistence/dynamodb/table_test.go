package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"survey-backend/domain/core/entities"
	"survey-backend/infrastructure/persistence/codec"
	"survey-backend/infrastructure/persistence/storage"
	apperrors "survey-backend/pkg/errors"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newCustomerTable(t *testing.T) (*Table[entities.Customer], *fakeDynamo) {
	t.Helper()
	fake := newFakeDynamo("CustomerId")
	conn := storage.NewDynamoDBConnection(fake, zap.NewNop())
	table := NewTable(conn, "Customers", codec.Customers(func() time.Time { return testNow }), zap.NewNop())
	return table, fake
}

func TestTable_CreateAndGet(t *testing.T) {
	// Arrange
	table, _ := newCustomerTable(t)
	ctx := context.Background()
	customer := entities.NewCustomer("ACME001", "ACME Corp", testNow, "system")
	customer.Email = entities.StringPtr("info@acme.test")

	// Act
	err := table.Create(ctx, customer)
	require.NoError(t, err)
	got, err := table.Get(ctx, customer.CustomerID)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ACME Corp", got.CompanyName)
	assert.Equal(t, "info@acme.test", entities.Deref(got.Email))
	assert.Nil(t, got.Fax)
	assert.True(t, got.IsActive)
}

func TestTable_GetMissingIsNil(t *testing.T) {
	table, _ := newCustomerTable(t)

	got, err := table.Get(context.Background(), "nope")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTable_CreateRefusesDuplicateIdentity(t *testing.T) {
	// Arrange
	table, _ := newCustomerTable(t)
	ctx := context.Background()
	customer := entities.NewCustomer("ACME001", "ACME Corp", testNow, "system")
	require.NoError(t, table.Create(ctx, customer))

	// Act
	err := table.Create(ctx, customer)

	// Assert
	assert.True(t, apperrors.IsConflict(err))
}

func TestTable_ReplaceRequiresExistingItem(t *testing.T) {
	// Arrange
	table, _ := newCustomerTable(t)
	ctx := context.Background()
	customer := entities.NewCustomer("ACME001", "ACME Corp", testNow, "system")

	// Act
	missing := table.Replace(ctx, customer)
	require.NoError(t, table.Create(ctx, customer))
	customer.CompanyName = "ACME Corporation"
	replaced := table.Replace(ctx, customer)
	got, err := table.Get(ctx, customer.CustomerID)

	// Assert
	assert.True(t, apperrors.IsNotFound(missing))
	assert.NoError(t, replaced)
	require.NoError(t, err)
	assert.Equal(t, "ACME Corporation", got.CompanyName)
}

func TestTable_DeleteReportsExistence(t *testing.T) {
	// Arrange
	table, _ := newCustomerTable(t)
	ctx := context.Background()
	customer := entities.NewCustomer("ACME001", "ACME Corp", testNow, "system")
	require.NoError(t, table.Create(ctx, customer))

	// Act
	first, err1 := table.Delete(ctx, customer.CustomerID)
	second, err2 := table.Delete(ctx, customer.CustomerID)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, first)
	assert.False(t, second)
}

func TestTable_ScanFollowsPages(t *testing.T) {
	// Arrange
	table, fake := newCustomerTable(t)
	fake.pageSize = 2
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		c := entities.NewCustomer(fmt.Sprintf("C%03d", i), fmt.Sprintf("Company %d", i), testNow, "system")
		require.NoError(t, table.Create(ctx, c))
	}

	// Act
	all, err := table.Scan(ctx)

	// Assert
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, 3, fake.scans)
}

func TestTable_ScanSkipsUndecodableItems(t *testing.T) {
	// Arrange
	table, fake := newCustomerTable(t)
	fake.items["bad"] = map[string]types.AttributeValue{
		"CustomerId":  &types.AttributeValueMemberS{Value: "bad"},
		"CompanyName": &types.AttributeValueMemberL{},
	}
	fake.items["good"] = map[string]types.AttributeValue{
		"CustomerId":  &types.AttributeValueMemberS{Value: "good"},
		"CompanyName": &types.AttributeValueMemberS{Value: "Good Co"},
	}

	// Act
	all, err := table.Scan(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "good", all[0].CustomerID)
}

func TestTable_UnavailableConnection(t *testing.T) {
	// Arrange
	conn := storage.NewUnavailableConnection(storage.BackendDynamoDB, errors.New("dial tcp: refused"), zap.NewNop())
	table := NewTable(conn, "Customers", codec.Customers(nil), zap.NewNop())

	// Act
	got, err := table.Get(context.Background(), "c1")

	// Assert
	assert.Nil(t, got)
	assert.True(t, apperrors.IsUnavailable(err))
	assert.Equal(t, storage.StateUnavailable, conn.State())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
		code        string
	}{
		{"throttled", &smithy.GenericAPIError{Code: "ThrottlingException"}, true, "STORE_UNAVAILABLE"},
		{"validation", &smithy.GenericAPIError{Code: "ValidationException"}, false, "ValidationException"},
		{"deadline", context.DeadlineExceeded, true, "TIMEOUT"},
		{"network", errors.New("connection reset"), true, "STORE_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := classify("get", tt.err)

			// Assert
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.unavailable, apperrors.IsUnavailable(err))
			assert.Equal(t, !tt.unavailable, apperrors.IsDatabase(err))
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestTable_ServiceErrorIsDatabaseError(t *testing.T) {
	// Arrange
	table, fake := newCustomerTable(t)
	fake.err = &smithy.GenericAPIError{Code: "ValidationException", Message: "bad key"}

	// Act
	_, err := table.Scan(context.Background())

	// Assert
	assert.True(t, apperrors.IsDatabase(err))
}
