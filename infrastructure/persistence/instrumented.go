package persistence

import (
	"context"
	"time"

	"go.uber.org/zap"

	"survey-backend/application/ports"
	apperrors "survey-backend/pkg/errors"
	"survey-backend/pkg/observability"
)

// instrumentedStore records metrics, a trace subsegment and a debug log line
// for every call to the wrapped store.
type instrumentedStore[T any] struct {
	inner     ports.Store[T]
	backend   string
	collector *observability.Collector
	tracer    *observability.Tracer
	logger    *zap.Logger
}

func instrument[T any](inner ports.Store[T], backend string, collector *observability.Collector, tracer *observability.Tracer, logger *zap.Logger) ports.Store[T] {
	return &instrumentedStore[T]{
		inner:     inner,
		backend:   backend,
		collector: collector,
		tracer:    tracer,
		logger:    logger.With(zap.String("table", inner.Name())),
	}
}

func (s *instrumentedStore[T]) Name() string { return s.inner.Name() }

func (s *instrumentedStore[T]) Get(ctx context.Context, id string) (*T, error) {
	var out *T
	err := s.observe(ctx, "get", id, func(ctx context.Context) error {
		var err error
		out, err = s.inner.Get(ctx, id)
		return err
	})
	return out, err
}

func (s *instrumentedStore[T]) Scan(ctx context.Context) ([]*T, error) {
	var out []*T
	err := s.observe(ctx, "scan", "", func(ctx context.Context) error {
		var err error
		out, err = s.inner.Scan(ctx)
		return err
	})
	return out, err
}

func (s *instrumentedStore[T]) Create(ctx context.Context, entity *T) error {
	return s.observe(ctx, "create", "", func(ctx context.Context) error {
		return s.inner.Create(ctx, entity)
	})
}

func (s *instrumentedStore[T]) Replace(ctx context.Context, entity *T) error {
	return s.observe(ctx, "replace", "", func(ctx context.Context) error {
		return s.inner.Replace(ctx, entity)
	})
}

func (s *instrumentedStore[T]) Delete(ctx context.Context, id string) (bool, error) {
	var out bool
	err := s.observe(ctx, "delete", id, func(ctx context.Context) error {
		var err error
		out, err = s.inner.Delete(ctx, id)
		return err
	})
	return out, err
}

func (s *instrumentedStore[T]) observe(ctx context.Context, op, id string, fn func(context.Context) error) error {
	start := time.Now()
	err := s.tracer.TraceFunction(ctx, s.backend+"."+s.inner.Name()+"."+op, fn)
	elapsed := time.Since(start)

	status := "success"
	switch {
	case err == nil:
	case apperrors.IsUnavailable(err):
		status = "unavailable"
	default:
		status = "error"
	}

	if s.collector != nil {
		s.collector.RecordStoreOperation(op, s.inner.Name(), status, elapsed)
		if status == "unavailable" {
			s.collector.RecordStoreUnavailable(s.backend)
		}
	}
	s.logger.Debug("Store operation",
		zap.String("operation", op),
		zap.String("id", id),
		zap.String("status", status),
		zap.Duration("duration", elapsed),
	)
	return err
}
