package persistence

import (
	"context"

	"go.uber.org/zap"

	"survey-backend/application/ports"
	apperrors "survey-backend/pkg/errors"
	"survey-backend/pkg/observability"
)

// offlineStore serves reads from a fixed dataset while the primary store is
// unreachable. Writes always go to the primary and fail with it.
type offlineStore[T any] struct {
	primary   ports.Store[T]
	dataset   ports.Store[T]
	collector *observability.Collector
	logger    *zap.Logger
}

func withOfflineReads[T any](primary, dataset ports.Store[T], collector *observability.Collector, logger *zap.Logger) ports.Store[T] {
	return &offlineStore[T]{
		primary:   primary,
		dataset:   dataset,
		collector: collector,
		logger:    logger.With(zap.String("table", primary.Name())),
	}
}

func (s *offlineStore[T]) Name() string { return s.primary.Name() }

func (s *offlineStore[T]) Get(ctx context.Context, id string) (*T, error) {
	out, err := s.primary.Get(ctx, id)
	if s.fallback(err) {
		return s.dataset.Get(ctx, id)
	}
	return out, err
}

func (s *offlineStore[T]) Scan(ctx context.Context) ([]*T, error) {
	out, err := s.primary.Scan(ctx)
	if s.fallback(err) {
		return s.dataset.Scan(ctx)
	}
	return out, err
}

func (s *offlineStore[T]) Create(ctx context.Context, entity *T) error {
	return s.primary.Create(ctx, entity)
}

func (s *offlineStore[T]) Replace(ctx context.Context, entity *T) error {
	return s.primary.Replace(ctx, entity)
}

func (s *offlineStore[T]) Delete(ctx context.Context, id string) (bool, error) {
	return s.primary.Delete(ctx, id)
}

func (s *offlineStore[T]) fallback(err error) bool {
	if !apperrors.IsUnavailable(err) {
		return false
	}
	s.logger.Warn("Store unavailable, serving offline dataset", zap.Error(err))
	if s.collector != nil {
		s.collector.RecordOfflineRead(s.primary.Name())
	}
	return true
}
