// Package relational stores entities in PostgreSQL through gorm. Each
// collection is one table of typed rows; the row types hold the column
// mapping and the conversion to and from entities.
package relational

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"survey-backend/infrastructure/persistence/storage"
	apperrors "survey-backend/pkg/errors"
)

// Mapping converts between an entity and its row.
type Mapping[T, R any] struct {
	// Key is the primary key column.
	Key     string
	ID      func(*T) string
	ToRow   func(*T) *R
	FromRow func(*R) *T
}

// Table stores one entity type in one SQL table.
type Table[T, R any] struct {
	conn    *storage.Connection
	name    string
	mapping Mapping[T, R]
	logger  *zap.Logger
}

// NewTable creates a table store. The connection is not opened here.
func NewTable[T, R any](conn *storage.Connection, name string, m Mapping[T, R], logger *zap.Logger) *Table[T, R] {
	return &Table[T, R]{
		conn:    conn,
		name:    name,
		mapping: m,
		logger:  logger.With(zap.String("table", name)),
	}
}

func (t *Table[T, R]) Name() string { return t.name }

// db returns a session bound to ctx and this table.
func (t *Table[T, R]) db(ctx context.Context) (*gorm.DB, error) {
	db, err := t.conn.DB(ctx)
	if err != nil {
		return nil, err
	}
	return db.Table(t.name), nil
}

func (t *Table[T, R]) Get(ctx context.Context, id string) (*T, error) {
	db, err := t.db(ctx)
	if err != nil {
		return nil, err
	}
	var row R
	if err := db.Where(t.mapping.Key+" = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, classify("get", err)
	}
	return t.mapping.FromRow(&row), nil
}

// Scan returns every row in primary key order.
func (t *Table[T, R]) Scan(ctx context.Context) ([]*T, error) {
	db, err := t.db(ctx)
	if err != nil {
		return nil, err
	}
	var rows []R
	if err := db.Order(t.mapping.Key).Find(&rows).Error; err != nil {
		return nil, classify("scan", err)
	}
	out := make([]*T, 0, len(rows))
	for i := range rows {
		out = append(out, t.mapping.FromRow(&rows[i]))
	}
	return out, nil
}

func (t *Table[T, R]) Create(ctx context.Context, entity *T) error {
	db, err := t.db(ctx)
	if err != nil {
		return err
	}
	if err := db.Create(t.mapping.ToRow(entity)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError(fmt.Sprintf("%s %s already exists", t.name, t.mapping.ID(entity)))
		}
		return classify("create", err)
	}
	t.logger.Debug("Row created", zap.String("id", t.mapping.ID(entity)))
	return nil
}

// Replace writes every column, including zero values.
func (t *Table[T, R]) Replace(ctx context.Context, entity *T) error {
	db, err := t.db(ctx)
	if err != nil {
		return err
	}
	id := t.mapping.ID(entity)
	res := db.Where(t.mapping.Key+" = ?", id).Select("*").Updates(t.mapping.ToRow(entity))
	if res.Error != nil {
		return classify("replace", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError(t.name + " " + id)
	}
	t.logger.Debug("Row replaced", zap.String("id", id))
	return nil
}

func (t *Table[T, R]) Delete(ctx context.Context, id string) (bool, error) {
	db, err := t.db(ctx)
	if err != nil {
		return false, err
	}
	res := db.Where(t.mapping.Key+" = ?", id).Delete(new(R))
	if res.Error != nil {
		return false, classify("delete", res.Error)
	}
	return res.RowsAffected > 0, nil
}
