// Package manager wires the cache stores behind the shared cache interface.
package manager

import (
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/interfaces"
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/stores"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
)

// Manager owns the cache stores for the site. Collections are the only
// cached shape today; the manager stays so eviction and stats have one home.
type Manager struct {
	collections *stores.CollectionStore
	logger      *logging.ChanneledLogger
}

// NewManager creates the cache manager with empty stores.
func NewManager(logger *logging.ChanneledLogger) *Manager {
	return &Manager{
		collections: stores.NewCollectionStore(),
		logger:      logger,
	}
}

// Collections returns the collection cache.
func (m *Manager) Collections() interfaces.CollectionCache {
	return m.collections
}

// InvalidateAll clears every cache store.
func (m *Manager) InvalidateAll() {
	m.collections.InvalidateAll()
	m.logger.Cache().Info("All caches invalidated")
}
