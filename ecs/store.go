package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// Store is a generic association from Entity to one component value of type T.
// One Store exists per component type. Iteration order is insertion order and
// is stable across value mutation, which keeps per-frame output deterministic
// for unchanged content.
//
// A Store is not safe for concurrent use; the framework's scheduling must
// serialize writers against readers.
type Store[T any] struct {
	index    *intmap.Map[Entity, int] // entity -> position in the dense slices
	entities []Entity
	values   []T
}

// NewStore creates an empty component store.
//
// Returns:
//   - *Store[T]: the new store
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index: intmap.New[Entity, int](64),
	}
}

// Set associates a component value with an entity, replacing any existing
// value. A replaced entity keeps its original position in iteration order.
//
// Parameters:
//   - e: the entity to associate the value with
//   - v: the component value
func (s *Store[T]) Set(e Entity, v T) {
	if pos, ok := s.index.Get(e); ok {
		s.values[pos] = v
		return
	}
	s.index.Put(e, len(s.entities))
	s.entities = append(s.entities, e)
	s.values = append(s.values, v)
}

// Get returns a copy of the component value for an entity.
//
// Parameters:
//   - e: the entity to look up
//
// Returns:
//   - T: the component value (zero value when absent)
//   - bool: true if the entity has a component in this store
func (s *Store[T]) Get(e Entity) (T, bool) {
	if pos, ok := s.index.Get(e); ok {
		return s.values[pos], true
	}
	var zero T
	return zero, false
}

// GetPtr returns a pointer to the stored component value for in-place
// mutation (e.g. clearing dirty flags). The pointer is invalidated by the
// next Set or Remove on this store.
//
// Parameters:
//   - e: the entity to look up
//
// Returns:
//   - *T: pointer to the stored value, nil when absent
//   - bool: true if the entity has a component in this store
func (s *Store[T]) GetPtr(e Entity) (*T, bool) {
	if pos, ok := s.index.Get(e); ok {
		return &s.values[pos], true
	}
	return nil, false
}

// Has reports whether an entity has a component in this store.
//
// Parameters:
//   - e: the entity to look up
//
// Returns:
//   - bool: true if present
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.index.Get(e)
	return ok
}

// Remove deletes the component for an entity. The relative iteration order of
// the remaining entities is preserved (ordered splice, not swap-remove).
//
// Parameters:
//   - e: the entity whose component should be removed
func (s *Store[T]) Remove(e Entity) {
	pos, ok := s.index.Get(e)
	if !ok {
		return
	}
	s.index.Del(e)
	s.entities = append(s.entities[:pos], s.entities[pos+1:]...)
	s.values = append(s.values[:pos], s.values[pos+1:]...)
	for i := pos; i < len(s.entities); i++ {
		s.index.Put(s.entities[i], i)
	}
}

// Len returns the number of components in the store.
//
// Returns:
//   - int: component count
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// All iterates entities and pointers to their component values in insertion
// order. The store must not be structurally modified during iteration.
//
// Returns:
//   - iter.Seq2[Entity, *T]: insertion-ordered iterator over the store
func (s *Store[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := range s.entities {
			if !yield(s.entities[i], &s.values[i]) {
				return
			}
		}
	}
}
