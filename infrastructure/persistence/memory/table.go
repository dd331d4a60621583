// Package memory keeps tables in process memory. Items are held in their
// encoded form so reads go through the same codec as DynamoDB, and scans
// return items in insertion order.
package memory

import (
	"context"
	"fmt"
	"sync"

	"survey-backend/infrastructure/persistence/codec"
	apperrors "survey-backend/pkg/errors"
)

// Table is an in-memory store for one entity type.
type Table[T any] struct {
	name  string
	codec codec.Codec[T]

	mu    sync.RWMutex
	items map[string]codec.Item
	order []string
}

// NewTable creates an empty table.
func NewTable[T any](name string, c codec.Codec[T]) *Table[T] {
	return &Table[T]{
		name:  name,
		codec: c,
		items: make(map[string]codec.Item),
	}
}

// Load inserts entities, replacing any with the same identity.
func (t *Table[T]) Load(entities ...*T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range entities {
		if err := t.putLocked(e); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table[T]) Name() string { return t.name }

// Len returns the number of stored items.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

func (t *Table[T]) Get(_ context.Context, id string) (*T, error) {
	t.mu.RLock()
	item, ok := t.items[id]
	t.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	entity, err := t.codec.Decode(item)
	if err != nil {
		return nil, apperrors.NewDatabaseError("decode", err)
	}
	return entity, nil
}

func (t *Table[T]) Scan(_ context.Context) ([]*T, error) {
	t.mu.RLock()
	items := make([]codec.Item, 0, len(t.order))
	for _, id := range t.order {
		items = append(items, t.items[id])
	}
	t.mu.RUnlock()

	out := make([]*T, 0, len(items))
	for _, item := range items {
		entity, err := t.codec.Decode(item)
		if err != nil {
			return nil, apperrors.NewDatabaseError("decode", err)
		}
		out = append(out, entity)
	}
	return out, nil
}

func (t *Table[T]) Create(_ context.Context, entity *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.codec.ID(entity)
	if _, exists := t.items[id]; exists {
		return apperrors.NewConflictError(fmt.Sprintf("%s %s already exists", t.name, id))
	}
	return t.putLocked(entity)
}

func (t *Table[T]) Replace(_ context.Context, entity *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.codec.ID(entity)
	if _, exists := t.items[id]; !exists {
		return apperrors.NewNotFoundError(t.name + " " + id)
	}
	return t.putLocked(entity)
}

func (t *Table[T]) Delete(_ context.Context, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.items[id]; !exists {
		return false, nil
	}
	delete(t.items, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (t *Table[T]) putLocked(entity *T) error {
	item, err := t.codec.Encode(entity)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	id := t.codec.ID(entity)
	if _, exists := t.items[id]; !exists {
		t.order = append(t.order, id)
	}
	t.items[id] = item
	return nil
}
