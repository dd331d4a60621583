package services

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"survey-backend/application/dto"
	"survey-backend/application/ports"
	apperrors "survey-backend/pkg/errors"
	"survey-backend/pkg/utils"
)

// crud is the data-access core shared by the entity services. Every method
// returns the operation's empty shape together with the error when the store
// fails, and logs the failure; absence is (nil, nil).
type crud[T any] struct {
	store  ports.Store[T]
	clock  utils.Clock
	logger *zap.Logger
}

func newCrud[T any](store ports.Store[T], clock utils.Clock, logger *zap.Logger) crud[T] {
	return crud[T]{
		store:  store,
		clock:  clock,
		logger: logger.With(zap.String("table", store.Name())),
	}
}

func (c *crud[T]) get(ctx context.Context, id string) (*T, error) {
	entity, err := c.store.Get(ctx, id)
	if err != nil {
		c.failed("get", id, err)
		return nil, err
	}
	return entity, nil
}

func (c *crud[T]) scan(ctx context.Context) ([]*T, error) {
	all, err := c.store.Scan(ctx)
	if err != nil {
		c.failed("scan", "", err)
		return nil, err
	}
	return all, nil
}

// query describes how a list call filters and orders a collection.
type query[T any] struct {
	// match reports whether an entity matches a non-empty, lower-cased
	// search term.
	match func(entity *T, term string) bool
	// keep drops entities before searching; nil keeps everything.
	keep func(entity *T) bool
	less func(a, b *T) bool
}

// list scans the whole collection, filters it, counts the matches and cuts
// the window [skip, skip+limit).
func (c *crud[T]) list(ctx context.Context, p dto.ListParams, q query[T]) (*dto.Page[T], error) {
	if err := p.Validate(); err != nil {
		return dto.EmptyPage[T](p), err
	}
	all, err := c.scan(ctx)
	if err != nil {
		return dto.EmptyPage[T](p), err
	}

	term := strings.ToLower(strings.TrimSpace(p.Search))
	filtered := make([]*T, 0, len(all))
	for _, e := range all {
		if q.keep != nil && !q.keep(e) {
			continue
		}
		if term != "" && q.match != nil && !q.match(e, term) {
			continue
		}
		filtered = append(filtered, e)
	}
	if q.less != nil {
		sort.SliceStable(filtered, func(i, j int) bool { return q.less(filtered[i], filtered[j]) })
	}
	return dto.NewPage(window(filtered, p.Skip, p.Limit), len(filtered), p), nil
}

func (c *crud[T]) create(ctx context.Context, entity *T) (*T, error) {
	if err := c.store.Create(ctx, entity); err != nil {
		c.failed("create", "", err)
		return nil, err
	}
	return entity, nil
}

// update loads id, applies mutate and writes the result back. It returns
// (nil, nil) when id does not exist, including when it disappears between
// the read and the write.
func (c *crud[T]) update(ctx context.Context, id string, mutate func(*T) error) (*T, error) {
	entity, err := c.get(ctx, id)
	if err != nil || entity == nil {
		return nil, err
	}
	if err := mutate(entity); err != nil {
		return nil, err
	}
	if err := c.store.Replace(ctx, entity); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		c.failed("replace", id, err)
		return nil, err
	}
	return entity, nil
}

func (c *crud[T]) remove(ctx context.Context, id string) (bool, error) {
	existed, err := c.store.Delete(ctx, id)
	if err != nil {
		c.failed("delete", id, err)
		return false, err
	}
	return existed, nil
}

func (c *crud[T]) failed(op, id string, err error) {
	fields := []zap.Field{zap.String("operation", op), zap.Error(err)}
	if id != "" {
		fields = append(fields, zap.String("id", id))
	}
	if apperrors.IsStoreFailure(err) {
		c.logger.Error("Store operation failed", fields...)
		return
	}
	c.logger.Warn("Store operation rejected", fields...)
}

func window[T any](items []*T, skip, limit int) []*T {
	if skip >= len(items) {
		return []*T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

// containsAny reports whether any field contains term, ignoring case. term
// must already be lower-cased.
func containsAny(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
