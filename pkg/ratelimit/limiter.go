// Package ratelimit limits request rates per client key.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// SlidingWindow allows at most limit requests per key within any window of
// the given size.
type SlidingWindow struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	size    time.Duration
	now     func() time.Time
}

type window struct {
	mu       sync.Mutex
	requests []time.Time
}

// NewSlidingWindow creates a limiter. A nil clock means time.Now.
func NewSlidingWindow(limit int, size time.Duration, clock func() time.Time) *SlidingWindow {
	if clock == nil {
		clock = time.Now
	}
	return &SlidingWindow{
		windows: make(map[string]*window),
		limit:   limit,
		size:    size,
		now:     clock,
	}
}

// PerMinute is a sliding window one minute wide.
func PerMinute(limit int) *SlidingWindow {
	return NewSlidingWindow(limit, time.Minute, nil)
}

// Allow records the request when it is within the limit.
func (l *SlidingWindow) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	w, ok := l.windows[key]
	if !ok {
		w = &window{}
		l.windows[key] = w
	}
	l.mu.Unlock()

	w.mu.Lock()
	defer w.mu.Unlock()

	now := l.now()
	start := now.Add(-l.size)
	kept := w.requests[:0]
	for _, at := range w.requests {
		if at.After(start) {
			kept = append(kept, at)
		}
	}
	w.requests = kept

	if len(w.requests) >= l.limit {
		return false, nil
	}
	w.requests = append(w.requests, now)
	return true, nil
}

// Reset forgets the history of key.
func (l *SlidingWindow) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
	return nil
}

// Prune drops keys with no request inside the current window.
func (l *SlidingWindow) Prune() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := l.now().Add(-l.size)
	pruned := 0
	for key, w := range l.windows {
		w.mu.Lock()
		idle := len(w.requests) == 0 || !w.requests[len(w.requests)-1].After(start)
		w.mu.Unlock()
		if idle {
			delete(l.windows, key)
			pruned++
		}
	}
	return pruned
}

// RunPruner calls Prune every interval until ctx is done.
func (l *SlidingWindow) RunPruner(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Prune()
		}
	}
}
