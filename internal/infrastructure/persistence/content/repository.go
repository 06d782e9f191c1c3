// Package content provides the cache-first collection repositories.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/royalacademy/academy-go/internal/domain/collection"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/interfaces"
	"github.com/royalacademy/academy-go/internal/infrastructure/messaging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/persistence/bucket"
)

// Repository is the cache-first store for one collection bucket. Reads hit
// the cache, then the bucket store, then the seed defaults; a missing or
// undecodable bucket is replaced wholesale by the defaults and persisted so
// the next boot finds real data. An unreachable store degrades the read to
// the defaults; only writes surface storage errors. Writes replace the full
// collection and fan the refreshed payload out to subscribers.
type Repository[T content.Item] struct {
	bucketKey   string
	defaults    func() []T
	store       bucket.Store
	cache       interfaces.CollectionCache
	broadcaster *messaging.Broadcaster
	feed        *messaging.AdminFeed
	logger      *logging.ChanneledLogger
}

// NewRepository creates a repository bound to one bucket key. feed may be
// nil when no admin dashboard is attached.
func NewRepository[T content.Item](
	bucketKey string,
	defaults func() []T,
	store bucket.Store,
	cache interfaces.CollectionCache,
	broadcaster *messaging.Broadcaster,
	feed *messaging.AdminFeed,
	logger *logging.ChanneledLogger,
) *Repository[T] {
	return &Repository[T]{
		bucketKey:   bucketKey,
		defaults:    defaults,
		store:       store,
		cache:       cache,
		broadcaster: broadcaster,
		feed:        feed,
		logger:      logger,
	}
}

// BucketKey returns the bucket key this repository serves.
func (r *Repository[T]) BucketKey() string { return r.bucketKey }

// FindAll retrieves the whole collection, employing a cache-first strategy.
func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	if cached, found := r.cache.Get(r.bucketKey); found {
		if items, ok := cached.([]T); ok {
			r.logger.LogCacheOperation("get", r.bucketKey, true, 0)
			return items, nil
		}
		// Wrong shape means the key was recycled; drop it and reload.
		r.cache.Invalidate(r.bucketKey)
	}

	start := time.Now()
	raw, found, err := r.store.Load(ctx, r.bucketKey)
	if err != nil {
		// Reads degrade instead of failing: serve the defaults and keep the
		// cache and bucket untouched so the next read retries the store.
		r.logger.Content().Error("Collection bucket load failed, serving defaults",
			"bucketKey", r.bucketKey, "error", err.Error())
		items := r.defaults()
		if items == nil {
			items = []T{}
		}
		return items, nil
	}

	if !found {
		return r.seed(ctx, "bucket missing")
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		r.logger.Content().Warn("Collection bucket undecodable, reseeding",
			"bucketKey", r.bucketKey, "error", err.Error())
		return r.seed(ctx, "bucket undecodable")
	}
	if items == nil {
		items = []T{}
	}

	r.cache.Set(r.bucketKey, items)
	r.logger.LogCacheOperation("set", r.bucketKey, false, time.Since(start))
	return items, nil
}

// FindByID retrieves one item by id, or collection.ErrNotFound.
func (r *Repository[T]) FindByID(ctx context.Context, id string) (T, error) {
	var zero T

	items, err := r.FindAll(ctx)
	if err != nil {
		return zero, err
	}

	item, found := collection.Find(items, id)
	if !found {
		return zero, fmt.Errorf("item %s in %s: %w", id, r.bucketKey, collection.ErrNotFound)
	}
	return item, nil
}

// ReplaceAll persists the full collection, refreshes the cache and notifies
// every subscriber with the new payload. The save is whole-value: the last
// completed write for the bucket wins.
func (r *Repository[T]) ReplaceAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	if err := collection.ValidateIDs(items); err != nil {
		return err
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", r.bucketKey, err)
	}

	if err := r.store.Save(ctx, r.bucketKey, raw); err != nil {
		return err
	}

	r.cache.Set(r.bucketKey, items)
	r.broadcaster.BroadcastCollection(r.bucketKey, items)
	if r.feed != nil {
		r.feed.NotifyBucketChange(r.bucketKey, len(items))
	}
	return nil
}

// Seed forces a load so an empty or broken bucket gets its defaults during
// startup instead of on the first request.
func (r *Repository[T]) Seed(ctx context.Context) error {
	_, err := r.FindAll(ctx)
	return err
}

func (r *Repository[T]) seed(ctx context.Context, reason string) ([]T, error) {
	items := r.defaults()

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode defaults for %s: %w", r.bucketKey, err)
	}
	// Concurrent first loads race to the same upsert with identical content,
	// so whichever save lands last changes nothing.
	if err := r.store.Save(ctx, r.bucketKey, raw); err != nil {
		return nil, fmt.Errorf("failed to seed collection %s: %w", r.bucketKey, err)
	}

	r.cache.Set(r.bucketKey, items)
	r.logger.Content().Info("Collection seeded with defaults",
		"bucketKey", r.bucketKey, "items", len(items), "reason", reason)
	return items, nil
}
