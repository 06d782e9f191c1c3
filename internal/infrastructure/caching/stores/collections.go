// Package stores holds the concrete cache store implementations.
package stores

import (
	"sync"
	"time"
)

type entry struct {
	value       any
	lastUpdated time.Time
}

// CollectionStore caches decoded collections per bucket key. All methods are
// safe for concurrent use.
type CollectionStore struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewCollectionStore creates an empty collection cache.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{entries: make(map[string]*entry)}
}

func (s *CollectionStore) Get(bucketKey string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, found := s.entries[bucketKey]
	if !found {
		return nil, false
	}
	return e.value, true
}

func (s *CollectionStore) Set(bucketKey string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[bucketKey] = &entry{value: value, lastUpdated: time.Now().UTC()}
}

func (s *CollectionStore) Invalidate(bucketKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, bucketKey)
}

func (s *CollectionStore) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*entry)
}

func (s *CollectionStore) LastUpdated(bucketKey string) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, found := s.entries[bucketKey]
	if !found {
		return time.Time{}, false
	}
	return e.lastUpdated, true
}

func (s *CollectionStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	return keys
}

// EvictIdle drops entries not refreshed within maxAge and reports how many
// were removed. The next read for an evicted key falls through to the store.
func (s *CollectionStore) EvictIdle(maxAge time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, e := range s.entries {
		if e.lastUpdated.Before(cutoff) {
			delete(s.entries, key)
			evicted++
		}
	}
	return evicted
}
