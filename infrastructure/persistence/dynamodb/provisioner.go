package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"survey-backend/infrastructure/persistence/storage"
)

// Provisioner creates the catalog tables. Existing tables are left alone.
type Provisioner struct {
	client      storage.DynamoDBAPI
	prefix      string
	waitTimeout time.Duration
	logger      *zap.Logger
}

// NewProvisioner creates a provisioner for tables named prefix+collection.
func NewProvisioner(client storage.DynamoDBAPI, prefix string, logger *zap.Logger) *Provisioner {
	return &Provisioner{
		client:      client,
		prefix:      prefix,
		waitTimeout: 2 * time.Minute,
		logger:      logger,
	}
}

// EnsureTables creates every missing table and returns the names created.
func (p *Provisioner) EnsureTables(ctx context.Context, schemas []storage.TableSchema) ([]string, error) {
	var created []string
	for _, schema := range schemas {
		name := storage.TableName(p.prefix, schema.Name)

		exists, err := p.tableExists(ctx, name)
		if err != nil {
			return created, err
		}
		if exists {
			p.logger.Info("Table already exists", zap.String("table", name))
			continue
		}

		if _, err := p.client.CreateTable(ctx, CreateTableInput(name, schema)); err != nil {
			return created, fmt.Errorf("failed to create table %s: %w", name, err)
		}
		if p.waitTimeout > 0 {
			waiter := dynamodb.NewTableExistsWaiter(p.client, func(o *dynamodb.TableExistsWaiterOptions) {
				o.MinDelay = time.Second
				o.MaxDelay = 10 * time.Second
			})
			if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, p.waitTimeout); err != nil {
				return created, fmt.Errorf("table %s did not become active: %w", name, err)
			}
		}

		p.logger.Info("Table created", zap.String("table", name), zap.Int("indexes", len(schema.Indexes)))
		created = append(created, name)
	}
	return created, nil
}

func (p *Provisioner) tableExists(ctx context.Context, name string) (bool, error) {
	_, err := p.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
	if err == nil {
		return true, nil
	}
	if isResourceNotFound(err) {
		return false, nil
	}
	return false, classify("describe", err)
}

// CreateTableInput builds an on-demand table with a string hash key and one
// global secondary index per catalog index, each projecting all attributes.
func CreateTableInput(name string, schema storage.TableSchema) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{{
		AttributeName: aws.String(schema.PrimaryKey),
		AttributeType: types.ScalarAttributeTypeS,
	}}
	seen := map[string]bool{schema.PrimaryKey: true}
	addAttr := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		attrs = append(attrs, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}

	var gsis []types.GlobalSecondaryIndex
	for _, idx := range schema.Indexes {
		addAttr(idx.HashKey)
		keySchema := []types.KeySchemaElement{{
			AttributeName: aws.String(idx.HashKey),
			KeyType:       types.KeyTypeHash,
		}}
		if idx.SortKey != "" {
			addAttr(idx.SortKey)
			keySchema = append(keySchema, types.KeySchemaElement{
				AttributeName: aws.String(idx.SortKey),
				KeyType:       types.KeyTypeRange,
			})
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.Name),
			KeySchema:  keySchema,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:            aws.String(name),
		AttributeDefinitions: attrs,
		KeySchema: []types.KeySchemaElement{{
			AttributeName: aws.String(schema.PrimaryKey),
			KeyType:       types.KeyTypeHash,
		}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}
