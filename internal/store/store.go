package store

import "sync"

// Store is an in-memory record store keyed by trade id and shared by
// concurrent handlers. A write for an existing key silently replaces
// the previous record.
type Store[V any] struct {
	mu sync.RWMutex
	m  map[string]V
}

func New[V any]() *Store[V] {
	return &Store[V]{m: make(map[string]V)}
}

func (s *Store[V]) Put(id string, v V) {
	s.mu.Lock()
	s.m[id] = v
	s.mu.Unlock()
}

func (s *Store[V]) Get(id string) (V, bool) {
	s.mu.RLock()
	v, ok := s.m[id]
	s.mu.RUnlock()
	return v, ok
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
