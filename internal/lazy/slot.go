package lazy

import (
	"context"
	"sync"
)

// State describes the lifecycle of a lazily initialized resource.
type State int

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Slot holds a resource that is created at most once on first use and
// reused for the process lifetime. Concurrent first-use is guarded so only
// one initialization runs; callers arriving during initialization block
// until it completes. A failed initialization is retried on the next
// Acquire, since the backing resource may become available later.
type Slot[T any] struct {
	mu    sync.Mutex
	state State
	value T
	init  func(ctx context.Context) (T, error)
}

// NewSlot creates a slot whose resource is produced by init on first use.
func NewSlot[T any](init func(ctx context.Context) (T, error)) *Slot[T] {
	return &Slot[T]{init: init}
}

// Acquire returns the resource, initializing it if needed.
func (s *Slot[T]) Acquire(ctx context.Context) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateReady {
		return s.value, nil
	}

	s.state = StateInitializing
	value, err := s.init(ctx)
	if err != nil {
		s.state = StateFailed
		var zero T
		return zero, err
	}

	s.value = value
	s.state = StateReady
	return s.value, nil
}

// State returns the current slot state.
func (s *Slot[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
