package kv

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store used in tests and as a fallback when no
// durable backend is configured.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{
		entries: make(map[string]string),
	}
}

func (s *MemStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	return value, ok, nil
}

func (s *MemStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
	return nil
}

func (s *MemStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}
