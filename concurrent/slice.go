// Package concurrent holds collections shared between goroutines.
package concurrent

import (
	"slices"
	"sync"
)

// Slice collects the values produced by concurrent jobs.
type Slice[T any] struct {
	inner []T
	mu    sync.RWMutex
}

func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{}
}

// Append adds values at the end of the slice.
func (s *Slice[T]) Append(values ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner = append(s.inner, values...)
}

// Snapshot returns a copy of the values collected so far, in insertion order.
func (s *Slice[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.inner)
}

// Sorted returns a copy of the values collected so far, sorted with cmp. Concurrent jobs append in
// no particular order, Sorted gives a stable view of their results.
func (s *Slice[T]) Sorted(cmp func(a, b T) int) []T {
	snapshot := s.Snapshot()
	slices.SortStableFunc(snapshot, cmp)
	return snapshot
}

func (s *Slice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inner)
}
