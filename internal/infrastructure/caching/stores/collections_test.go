package stores

import (
	"testing"
	"time"
)

func TestSetGetInvalidate(t *testing.T) {
	s := NewCollectionStore()

	if _, found := s.Get("missing"); found {
		t.Error("empty store returned a value")
	}

	s.Set("bucket-a", []string{"x"})
	value, found := s.Get("bucket-a")
	if !found {
		t.Fatal("cached value not found")
	}
	if items := value.([]string); len(items) != 1 || items[0] != "x" {
		t.Errorf("wrong cached value: %v", value)
	}

	s.Invalidate("bucket-a")
	if _, found := s.Get("bucket-a"); found {
		t.Error("invalidated value still cached")
	}
}

func TestLastUpdatedTracksSet(t *testing.T) {
	s := NewCollectionStore()

	if _, found := s.LastUpdated("bucket-a"); found {
		t.Error("LastUpdated reported a missing key")
	}

	before := time.Now().UTC()
	s.Set("bucket-a", 1)
	stamp, found := s.LastUpdated("bucket-a")
	if !found {
		t.Fatal("LastUpdated missing after Set")
	}
	if stamp.Before(before.Add(-time.Second)) {
		t.Errorf("stale timestamp: %v", stamp)
	}
}

func TestEvictIdle(t *testing.T) {
	s := NewCollectionStore()
	s.Set("fresh", 1)

	// Backdate one entry past the TTL.
	s.mu.Lock()
	s.entries["stale"] = &entry{value: 2, lastUpdated: time.Now().UTC().Add(-2 * time.Hour)}
	s.mu.Unlock()

	if evicted := s.EvictIdle(time.Hour); evicted != 1 {
		t.Fatalf("evicted %d entries, want 1", evicted)
	}
	if _, found := s.Get("stale"); found {
		t.Error("stale entry survived eviction")
	}
	if _, found := s.Get("fresh"); !found {
		t.Error("fresh entry evicted")
	}
}
