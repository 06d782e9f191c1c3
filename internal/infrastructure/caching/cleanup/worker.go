// Package cleanup provides the background cache janitor.
package cleanup

import (
	"context"
	"time"

	"github.com/royalacademy/academy-go/internal/infrastructure/caching/manager"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
)

// Worker evicts idle cached collections on a fixed interval. Evicted keys
// reload from the bucket store on next read, so the janitor only trades
// memory for a cold read.
type Worker struct {
	cache  *manager.Manager
	config *Config
	logger *logging.ChanneledLogger
}

// NewWorker creates a cleanup worker with injected configuration.
func NewWorker(cache *manager.Manager, config *Config, logger *logging.ChanneledLogger) *Worker {
	return &Worker{cache: cache, config: config, logger: logger}
}

// Start runs the janitor loop until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.config.CleanupInterval)
	defer ticker.Stop()

	w.logger.Cache().Info("Cache cleanup worker started",
		"interval", w.config.CleanupInterval, "collectionTTL", w.config.CollectionTTL)

	for {
		select {
		case <-ctx.Done():
			w.logger.Cache().Info("Cache cleanup worker stopping")
			return
		case <-ticker.C:
			w.performCleanup()
		}
	}
}

func (w *Worker) performCleanup() {
	start := time.Now()

	evicted := w.cache.Collections().EvictIdle(w.config.CollectionTTL)
	if evicted > 0 {
		w.logger.Cache().Info("Evicted idle collections",
			"evicted", evicted, "duration", time.Since(start))
	}
}
