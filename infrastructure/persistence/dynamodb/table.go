package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"survey-backend/infrastructure/persistence/codec"
	"survey-backend/infrastructure/persistence/storage"
	apperrors "survey-backend/pkg/errors"
)

// Table stores one entity type in one DynamoDB table, keyed by a single
// string hash key.
type Table[T any] struct {
	conn   *storage.Connection
	name   string
	codec  codec.Codec[T]
	logger *zap.Logger
}

// NewTable creates a table store. The connection is not opened here.
func NewTable[T any](conn *storage.Connection, name string, c codec.Codec[T], logger *zap.Logger) *Table[T] {
	return &Table[T]{
		conn:   conn,
		name:   name,
		codec:  c,
		logger: logger.With(zap.String("table", name)),
	}
}

// Name returns the physical table name.
func (t *Table[T]) Name() string { return t.name }

// Get retrieves an entity by id.
func (t *Table[T]) Get(ctx context.Context, id string) (*T, error) {
	client, err := t.conn.DynamoDB(ctx)
	if err != nil {
		return nil, err
	}

	result, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.name),
		Key:       t.codec.KeyOf(id),
	})
	if err != nil {
		return nil, classify("get", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	entity, err := t.codec.Decode(result.Item)
	if err != nil {
		return nil, apperrors.NewDatabaseError("decode", err)
	}
	return entity, nil
}

// Scan reads every page of the table. Items that cannot be decoded are
// logged and skipped.
func (t *Table[T]) Scan(ctx context.Context) ([]*T, error) {
	client, err := t.conn.DynamoDB(ctx)
	if err != nil {
		return nil, err
	}

	var (
		out      []*T
		startKey map[string]types.AttributeValue
		pages    int
	)
	for {
		result, err := client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(t.name),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, classify("scan", err)
		}
		pages++

		for _, item := range result.Items {
			entity, err := t.codec.Decode(item)
			if err != nil {
				t.logger.Warn("Failed to parse item", zap.Error(err))
				continue
			}
			out = append(out, entity)
		}

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	t.logger.Debug("Table scanned", zap.Int("items", len(out)), zap.Int("pages", pages))
	return out, nil
}

// Create writes a new item, refusing to overwrite an existing identity.
func (t *Table[T]) Create(ctx context.Context, entity *T) error {
	cond := expression.Name(t.codec.Key()).AttributeNotExists()
	err := t.put(ctx, entity, cond)

	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return apperrors.NewConflictError(fmt.Sprintf("%s %s already exists", t.name, t.codec.ID(entity)))
	}
	if err != nil {
		return classify("create", err)
	}

	t.logger.Debug("Entity created", zap.String("entityID", t.codec.ID(entity)))
	return nil
}

// Replace overwrites an existing item. Concurrent writers race; the last
// write wins.
func (t *Table[T]) Replace(ctx context.Context, entity *T) error {
	cond := expression.Name(t.codec.Key()).AttributeExists()
	err := t.put(ctx, entity, cond)

	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return apperrors.NewNotFoundError(t.name + " " + t.codec.ID(entity))
	}
	if err != nil {
		return classify("replace", err)
	}

	t.logger.Debug("Entity replaced", zap.String("entityID", t.codec.ID(entity)))
	return nil
}

// Delete removes the item and reports whether it existed.
func (t *Table[T]) Delete(ctx context.Context, id string) (bool, error) {
	client, err := t.conn.DynamoDB(ctx)
	if err != nil {
		return false, err
	}

	result, err := client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(t.name),
		Key:          t.codec.KeyOf(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, classify("delete", err)
	}

	existed := len(result.Attributes) > 0
	t.logger.Debug("Entity deleted", zap.String("entityID", id), zap.Bool("existed", existed))
	return existed, nil
}

func (t *Table[T]) put(ctx context.Context, entity *T, cond expression.ConditionBuilder) error {
	client, err := t.conn.DynamoDB(ctx)
	if err != nil {
		return err
	}

	item, err := t.codec.Encode(entity)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("failed to build expression: %w", err)
	}

	_, err = client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(t.name),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	return err
}
