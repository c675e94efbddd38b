// Package sequence provides domain contracts for document number allocation.
package sequence

import (
	"context"
	"sync"
	"time"
)

// MockAllocator is a test implementation of Allocator.
// Use in unit tests to avoid database dependencies.
type MockAllocator struct {
	AllocateFunc func(ctx context.Context, category Category, now time.Time) (string, error)
	SetNextFunc  func(ctx context.Context, category Category, year int, value int64) error

	mu   sync.Mutex
	next map[string]int64
}

// Allocate implements Allocator.
// Without AllocateFunc it behaves as an in-memory per-(category, year) counter.
func (m *MockAllocator) Allocate(ctx context.Context, category Category, now time.Time) (string, error) {
	if m.AllocateFunc != nil {
		return m.AllocateFunc(ctx, category, now)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.next == nil {
		m.next = make(map[string]int64)
	}
	key := Format(category, now.Year(), 0)
	m.next[key]++
	return Format(category, now.Year(), m.next[key]), nil
}

// SetNext implements Allocator.
func (m *MockAllocator) SetNext(ctx context.Context, category Category, year int, value int64) error {
	if m.SetNextFunc != nil {
		return m.SetNextFunc(ctx, category, year, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.next == nil {
		m.next = make(map[string]int64)
	}
	m.next[Format(category, year, 0)] = value - 1
	return nil
}

// Ensure compile-time interface compliance.
var _ Allocator = (*MockAllocator)(nil)
