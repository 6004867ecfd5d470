package repositories

import (
	"fmt"
)

// keyedStore is an insertion-ordered map. Listings come back in the order
// entities were registered.
type keyedStore[T any] struct {
	items map[string]T
	order []string

	notFound      error
	alreadyExists error
}

func newKeyedStore[T any](notFound, alreadyExists error) *keyedStore[T] {
	return &keyedStore[T]{
		items:         make(map[string]T),
		notFound:      notFound,
		alreadyExists: alreadyExists,
	}
}

func (s *keyedStore[T]) create(key string, item T) error {
	if _, ok := s.items[key]; ok {
		return fmt.Errorf("%w: %s", s.alreadyExists, key)
	}
	s.items[key] = item
	s.order = append(s.order, key)
	return nil
}

func (s *keyedStore[T]) get(key string) (T, error) {
	item, ok := s.items[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", s.notFound, key)
	}
	return item, nil
}

func (s *keyedStore[T]) exists(key string) bool {
	_, ok := s.items[key]
	return ok
}

func (s *keyedStore[T]) all() []T {
	out := make([]T, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.items[key])
	}
	return out
}

func (s *keyedStore[T]) delete(key string) error {
	if _, ok := s.items[key]; !ok {
		return fmt.Errorf("%w: %s", s.notFound, key)
	}
	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *keyedStore[T]) count() int { return len(s.items) }
