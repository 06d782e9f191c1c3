// Package interfaces defines the cache contracts used by the repositories.
package interfaces

import "time"

// CollectionCache is the hot-path cache in front of the bucket store. Values
// are whole decoded collections keyed by bucket key; a Set replaces the
// cached collection wholesale, mirroring the whole-value save semantics of
// the store beneath it.
type CollectionCache interface {
	Get(bucketKey string) (any, bool)
	Set(bucketKey string, value any)
	Invalidate(bucketKey string)
	InvalidateAll()
	LastUpdated(bucketKey string) (time.Time, bool)
	Keys() []string
	EvictIdle(maxAge time.Duration) int
}
