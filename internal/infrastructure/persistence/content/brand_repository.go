package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/interfaces"
	"github.com/royalacademy/academy-go/internal/infrastructure/messaging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/persistence/bucket"
)

// BrandRepository stores the single site-wide brand configuration object.
// Same bucket discipline as the collections, but the value is one object
// rather than a list.
type BrandRepository struct {
	store       bucket.Store
	cache       interfaces.CollectionCache
	broadcaster *messaging.Broadcaster
	logger      *logging.ChanneledLogger
}

// NewBrandRepository creates the brand configuration repository.
func NewBrandRepository(store bucket.Store, cache interfaces.CollectionCache, broadcaster *messaging.Broadcaster, logger *logging.ChanneledLogger) *BrandRepository {
	return &BrandRepository{
		store:       store,
		cache:       cache,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Load retrieves the brand config, seeding the default when the bucket is
// missing or undecodable.
func (r *BrandRepository) Load(ctx context.Context) (content.BrandConfig, error) {
	if cached, found := r.cache.Get(content.BucketBrand); found {
		if brand, ok := cached.(content.BrandConfig); ok {
			r.logger.LogCacheOperation("get", content.BucketBrand, true, 0)
			return brand, nil
		}
		r.cache.Invalidate(content.BucketBrand)
	}

	start := time.Now()
	raw, found, err := r.store.Load(ctx, content.BucketBrand)
	if err != nil {
		return content.BrandConfig{}, fmt.Errorf("failed to load brand config: %w", err)
	}

	if found {
		var brand content.BrandConfig
		if err := json.Unmarshal(raw, &brand); err == nil {
			r.cache.Set(content.BucketBrand, brand)
			r.logger.LogCacheOperation("set", content.BucketBrand, false, time.Since(start))
			return brand, nil
		}
		r.logger.Content().Warn("Brand bucket undecodable, reseeding", "bucketKey", content.BucketBrand)
	}

	brand := content.DefaultBrandConfig()
	if err := r.Save(ctx, brand); err != nil {
		return content.BrandConfig{}, err
	}
	r.logger.Content().Info("Brand config seeded with defaults")
	return brand, nil
}

// Save persists the brand config and notifies subscribers.
func (r *BrandRepository) Save(ctx context.Context, brand content.BrandConfig) error {
	raw, err := json.Marshal(brand)
	if err != nil {
		return fmt.Errorf("failed to encode brand config: %w", err)
	}

	if err := r.store.Save(ctx, content.BucketBrand, raw); err != nil {
		return err
	}

	r.cache.Set(content.BucketBrand, brand)
	r.broadcaster.BroadcastCollection(content.BucketBrand, brand)
	return nil
}
