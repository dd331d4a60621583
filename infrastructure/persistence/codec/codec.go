// Package codec converts entities to and from DynamoDB items. It is the only
// place that works on raw attribute maps: stores above it see typed records.
package codec

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"survey-backend/domain/core/valueobjects"
)

// Item is a stored attribute map.
type Item = map[string]types.AttributeValue

// Clock supplies "now" for back-fill. Nil means time.Now.
type Clock = func() time.Time

// Codec translates one entity type.
type Codec[T any] interface {
	// Key is the primary key attribute name.
	Key() string
	// ID returns the primary identity of entity.
	ID(entity *T) string
	// KeyOf builds the key map for id.
	KeyOf(id string) Item
	Encode(entity *T) (Item, error)
	Decode(item Item) (*T, error)
}

// Shim rewrites a raw item before it is decoded.
type Shim func(item Item)

type entityCodec[T any] struct {
	key    string
	id     func(*T) string
	clock  Clock
	shims  []Shim
	encode func(*T, Item) error
	decode func(Item, *T) error
	fill   func(*T, time.Time)
	// prepare adjusts a copy of the entity before marshalling
	prepare func(*T)
}

func (c *entityCodec[T]) Key() string { return c.key }

func (c *entityCodec[T]) ID(entity *T) string { return c.id(entity) }

func (c *entityCodec[T]) KeyOf(id string) Item {
	return Item{c.key: &types.AttributeValueMemberS{Value: id}}
}

func (c *entityCodec[T]) Encode(entity *T) (Item, error) {
	if entity == nil {
		return nil, fmt.Errorf("cannot encode nil entity")
	}
	cp := *entity
	if c.prepare != nil {
		c.prepare(&cp)
	}

	item, err := attributevalue.MarshalMap(cp)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item: %w", err)
	}
	if c.encode != nil {
		if err := c.encode(&cp, item); err != nil {
			return nil, err
		}
	}
	return Sparse(item), nil
}

func (c *entityCodec[T]) Decode(item Item) (*T, error) {
	if item == nil {
		return nil, nil
	}
	raw := make(Item, len(item))
	for k, v := range item {
		raw[k] = v
	}
	for _, shim := range c.shims {
		shim(raw)
	}

	entity := new(T)
	if err := attributevalue.UnmarshalMap(raw, entity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	if c.decode != nil {
		if err := c.decode(raw, entity); err != nil {
			return nil, err
		}
	}
	if c.fill != nil {
		c.fill(entity, c.now())
	}
	return entity, nil
}

func (c *entityCodec[T]) now() time.Time {
	if c.clock == nil {
		return time.Now().UTC()
	}
	return c.clock().UTC()
}

// Sparse drops NULL attributes so absent values are never stored as null.
func Sparse(item Item) Item {
	for k, v := range item {
		if _, ok := v.(*types.AttributeValueMemberNULL); ok {
			delete(item, k)
		}
	}
	return item
}

// LegacyNumericIDs converts identity attributes stored as numbers by older
// writers into their string form.
func LegacyNumericIDs(item Item) {
	for k, v := range item {
		if !strings.HasSuffix(k, "Id") {
			continue
		}
		if n, ok := v.(*types.AttributeValueMemberN); ok {
			item[k] = &types.AttributeValueMemberS{Value: n.Value}
		}
	}
}

// StatusAlias resolves the survey status reference from whichever of its two
// names is present and writes it back under both.
func StatusAlias(item Item) {
	current, hasCurrent := stringAttr(item, "SurveyStatusId")
	legacy, hasLegacy := stringAttr(item, "StatusId")
	switch {
	case hasCurrent:
		item["StatusId"] = &types.AttributeValueMemberS{Value: current}
	case hasLegacy:
		item["SurveyStatusId"] = &types.AttributeValueMemberS{Value: legacy}
	}
}

func stringAttr(item Item, name string) (string, bool) {
	s, ok := item[name].(*types.AttributeValueMemberS)
	if !ok || s.Value == "" {
		return "", false
	}
	return s.Value, true
}

// SyntheticCode builds a timestamp-derived placeholder such as
// SURVEY-20240102-150405.
func SyntheticCode(prefix string, now time.Time) string {
	return prefix + "-" + now.UTC().Format("20060102-150405")
}

func fillTimestamp(ts *valueobjects.Timestamp, now time.Time) {
	if ts.IsZero() {
		*ts = valueobjects.TimestampOf(now)
	}
}
