// Package bucket provides the durable named-slot store behind every
// collection: one JSON value per string key, with pluggable backends.
package bucket

import (
	"context"
	"sync"
)

// Store is the durable bucket transport. A key addresses exactly one JSON
// value; Load reports found=false for a key that was never saved. The last
// completed Save for a key wins whole-value (no version stamps).
type Store interface {
	Load(ctx context.Context, key string) (value []byte, found bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// MemoryStore is an in-process Store used for tests and ephemeral runs.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string][]byte
}

// NewMemoryStore creates an empty in-memory bucket store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, found := s.buckets[key]
	if !found {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets[key] = stored
	return nil
}

func (s *MemoryStore) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.buckets))
	for key := range s.buckets {
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *MemoryStore) Close() error { return nil }
