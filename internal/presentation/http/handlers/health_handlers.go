package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/manager"
	"github.com/royalacademy/academy-go/internal/infrastructure/messaging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/performance"
)

// HealthHandlers serves liveness and operational status.
type HealthHandlers struct {
	cache       *manager.Manager
	broadcaster *messaging.Broadcaster
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	startedAt   time.Time
}

// NewHealthHandlers creates health handlers with injected dependencies.
func NewHealthHandlers(cache *manager.Manager, broadcaster *messaging.Broadcaster, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *HealthHandlers {
	return &HealthHandlers{
		cache:       cache,
		broadcaster: broadcaster,
		logger:      logger,
		perfTracker: perfTracker,
		startedAt:   time.Now(),
	}
}

// Health handles GET /health.
func (h *HealthHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status handles GET /api/v1/admin/status - cache, SSE and operation stats
// for the admin dashboard.
func (h *HealthHandlers) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"uptime":         time.Since(h.startedAt).String(),
		"cachedBuckets":  h.cache.Collections().Keys(),
		"sseConnections": h.broadcaster.ConnectionCount(),
		"operations":     h.perfTracker.GetOverallStats(),
		"logLevels":      h.logger.GetChannelLevels(),
	})
}
