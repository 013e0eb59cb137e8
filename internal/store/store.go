// Package store provides the key/value preference storage boundary.
// The theme controller uses a single key; failures are never fatal and
// callers are expected to degrade to session defaults.
package store

import "sync"

// Store is the persistent key/value boundary. Get reports absence via the
// second return value; Set overwrites unconditionally.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Close() error
}

// MemoryStore is a non-persistent Store. It backs tests and serves as the
// degraded fallback when the on-disk store cannot be opened.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value for key, if any.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
