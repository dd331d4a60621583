package dynamodb

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-process stand-in for the narrow DynamoDB client. It
// honours attribute_exists / attribute_not_exists conditions on the key and
// pages scans when pageSize is set.
type fakeDynamo struct {
	mu       sync.Mutex
	key      string
	items    map[string]map[string]types.AttributeValue
	tables   map[string]bool
	created  []*dynamodb.CreateTableInput
	pageSize int
	scans    int
	err      error
}

func newFakeDynamo(key string) *fakeDynamo {
	return &fakeDynamo{
		key:    key,
		items:  make(map[string]map[string]types.AttributeValue),
		tables: make(map[string]bool),
	}
}

func (f *fakeDynamo) id(item map[string]types.AttributeValue) string {
	if s, ok := item[f.key].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[f.id(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	id := f.id(in.Item)
	_, exists := f.items[id]
	cond := aws.ToString(in.ConditionExpression)
	switch {
	case strings.Contains(cond, "attribute_not_exists") && exists:
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	case !strings.Contains(cond, "attribute_not_exists") && strings.Contains(cond, "attribute_exists") && !exists:
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	id := f.id(in.Key)
	old := f.items[id]
	delete(f.items, id)
	return &dynamodb.DeleteItemOutput{Attributes: old}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.scans++

	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := 0
	if in.ExclusiveStartKey != nil {
		after := f.id(in.ExclusiveStartKey)
		start = sort.SearchStrings(ids, after) + 1
	}
	end := len(ids)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}

	out := &dynamodb.ScanOutput{}
	for _, id := range ids[start:end] {
		out.Items = append(out.Items, f.items[id])
	}
	if end < len(ids) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{f.key: &types.AttributeValueMemberS{Value: ids[end-1]}}
	}
	return out, nil
}

func (f *fakeDynamo) ListTables(context.Context, *dynamodb.ListTablesInput, ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for name := range f.tables {
		names = append(names, name)
	}
	return &dynamodb.ListTablesOutput{TableNames: names}, f.err
}

func (f *fakeDynamo) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if !f.tables[aws.ToString(in.TableName)] {
		return nil, &types.ResourceNotFoundException{Message: aws.String("no such table")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func (f *fakeDynamo) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.tables[aws.ToString(in.TableName)] = true
	f.created = append(f.created, in)
	return &dynamodb.CreateTableOutput{}, nil
}
