package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"survey-backend/infrastructure/persistence/storage"
)

func TestProvisioner_CreatesMissingTablesOnce(t *testing.T) {
	// Arrange
	fake := newFakeDynamo("unused")
	fake.tables["dev-Customers"] = true
	p := NewProvisioner(fake, "dev-", zap.NewNop())
	p.waitTimeout = 0
	ctx := context.Background()

	// Act
	first, err := p.EnsureTables(ctx, storage.Catalog)
	require.NoError(t, err)
	second, err := p.EnsureTables(ctx, storage.Catalog)
	require.NoError(t, err)

	// Assert
	assert.Len(t, first, len(storage.Catalog)-1)
	assert.NotContains(t, first, "dev-Customers")
	assert.Contains(t, first, "dev-Surveys")
	assert.Empty(t, second)
}

func TestCreateTableInput(t *testing.T) {
	// Arrange
	schema := storage.TableSchema{
		Name:       storage.UserSettings,
		PrimaryKey: "UserSettingsId",
		Indexes:    []storage.Index{{Name: "UserIdIndex", HashKey: "UserId", SortKey: "SettingsType"}},
	}

	// Act
	in := CreateTableInput("UserSettings", schema)

	// Assert
	assert.Equal(t, types.BillingModePayPerRequest, in.BillingMode)
	require.Len(t, in.KeySchema, 1)
	assert.Equal(t, "UserSettingsId", aws.ToString(in.KeySchema[0].AttributeName))
	assert.Len(t, in.AttributeDefinitions, 3)
	require.Len(t, in.GlobalSecondaryIndexes, 1)
	gsi := in.GlobalSecondaryIndexes[0]
	assert.Equal(t, "UserIdIndex", aws.ToString(gsi.IndexName))
	assert.Len(t, gsi.KeySchema, 2)
	assert.Equal(t, types.ProjectionTypeAll, gsi.Projection.ProjectionType)
}
