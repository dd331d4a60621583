package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"survey-backend/application/ports"
	"survey-backend/application/services"
	"survey-backend/infrastructure/persistence"
)

var base = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// tickingClock advances one second per call so updates are observable.
type tickingClock struct {
	mu sync.Mutex
	n  int
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return base.Add(time.Duration(c.n) * time.Second)
}

func newServices(t *testing.T) (*services.Services, ports.Stores) {
	t.Helper()
	clock := &tickingClock{}
	stores := persistence.NewMemoryStores(clock.Now)
	svc := services.New(stores, services.Options{
		Principal: "tester",
		UserID:    "user-1",
		Clock:     clock.Now,
	}, zap.NewNop())
	return svc, stores
}

func str(s string) *string { return &s }

func boolean(b bool) *bool { return &b }

func integer(n int) *int { return &n }

// mockStore is a ports.Store whose calls are scripted with testify/mock.
type mockStore[T any] struct {
	mock.Mock
}

func (m *mockStore[T]) Name() string { return "Mock" }

func (m *mockStore[T]) Get(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*T)
	return out, args.Error(1)
}

func (m *mockStore[T]) Scan(ctx context.Context) ([]*T, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*T)
	return out, args.Error(1)
}

func (m *mockStore[T]) Create(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockStore[T]) Replace(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockStore[T]) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
