// Package set provides a minimal generic set.
package set

// Set of comparable values, the zero value is not usable, use New.
type Set[T comparable] map[T]struct{}

func New[T comparable]() Set[T] {
	return make(Set[T])
}

// NewWithValues creates a set holding values.
func NewWithValues[T comparable](values ...T) Set[T] {
	return NewFromSlice(values)
}

// NewFromSlice creates a set holding the elements of slice.
func NewFromSlice[T comparable](slice []T) Set[T] {
	s := make(Set[T], len(slice))
	for _, elem := range slice {
		s.Add(elem)
	}
	return s
}

func (s Set[T]) Add(value T) {
	s[value] = struct{}{}
}

func (s Set[T]) Contains(value T) bool {
	_, exists := s[value]
	return exists
}

func (s Set[T]) DoesNotContain(value T) bool {
	return !s.Contains(value)
}
