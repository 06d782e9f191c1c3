package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/infrastructure/messaging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/performance"
	"github.com/royalacademy/academy-go/pkg/config"
)

var activeSSEConnections int64

// SubscribeHandlers serves the live collection subscription stream.
type SubscribeHandlers struct {
	broadcaster *messaging.Broadcaster
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewSubscribeHandlers creates the SSE subscription handlers.
func NewSubscribeHandlers(broadcaster *messaging.Broadcaster, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *SubscribeHandlers {
	return &SubscribeHandlers{
		broadcaster: broadcaster,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// Subscribe handles GET /api/v1/content/subscribe - establishes a
// Server-Sent Events stream for the requested buckets. Every committed save
// to a subscribed bucket arrives as one collection_updated event carrying
// the full replacement list.
func (h *SubscribeHandlers) Subscribe(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("subscribe_request", "sse")
	defer marker.Complete()
	h.logger.SSE().Debug("Received SSE connection request", "method", c.Request.Method, "path", c.Request.URL.Path)

	bucketKeys, err := parseBucketKeys(c.Query("buckets"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check connection limits
	currentConnections := atomic.LoadInt64(&activeSSEConnections)
	if currentConnections >= config.MaxSSEConnections {
		h.logger.SSE().Warn("SSE connection limit reached",
			"currentConnections", currentConnections,
			"maxConnections", config.MaxSSEConnections)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "SSE connection limit reached. Please try again later.",
		})
		return
	}

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// The server write timeout would sever the stream long before the first
	// heartbeat; lift the deadline for the lifetime of this response.
	if err := http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{}); err != nil {
		h.logger.SSE().Debug("Could not clear write deadline for SSE stream", "error", err.Error())
	}

	// One fanout channel per subscribed bucket, merged into the stream.
	merged := make(chan string, 100)
	channels := make([]chan string, 0, len(bucketKeys))
	for _, bucketKey := range bucketKeys {
		ch := h.broadcaster.AddClient(bucketKey)
		channels = append(channels, ch)
		go func(ch chan string) {
			for message := range ch {
				select {
				case merged <- message:
				default:
				}
			}
		}(ch)
	}

	atomic.AddInt64(&activeSSEConnections, 1)
	defer func() {
		atomic.AddInt64(&activeSSEConnections, -1)
		for i, ch := range channels {
			h.broadcaster.RemoveClient(ch, bucketKeys[i])
			close(ch)
		}
	}()

	// Send initial connection confirmation
	confirmation := fmt.Sprintf("data: {\"type\":\"connected\",\"buckets\":%d,\"timestamp\":\"%s\"}\n\n",
		len(bucketKeys), time.Now().Format(time.RFC3339))
	if _, err := c.Writer.WriteString(confirmation); err != nil {
		return
	}
	c.Writer.Flush()

	clientCtx := c.Request.Context()

	h.logger.SSE().Info("SSE connection established",
		"buckets", strings.Join(bucketKeys, ","),
		"totalConnections", atomic.LoadInt64(&activeSSEConnections),
		"setupDuration", time.Since(start))

	marker.SetSuccess(true)
	h.logger.Perf().Info("Performance for Subscribe request", "duration", time.Since(start), "success", true)

	ticker := time.NewTicker(time.Duration(config.SSEHeartbeatIntervalSeconds) * time.Second)
	defer ticker.Stop()

	connectionStart := time.Now()
	for {
		select {
		case <-clientCtx.Done():
			h.logger.SSE().Info("SSE client disconnected",
				"connectionDuration", time.Since(connectionStart))
			return

		case message := <-merged:
			if _, err := c.Writer.WriteString(message); err != nil {
				h.logger.SSE().Error("SSE write failed", "error", err.Error())
				return
			}
			c.Writer.Flush()

		case <-ticker.C:
			heartbeat := fmt.Sprintf("data: {\"type\":\"heartbeat\",\"timestamp\":\"%s\"}\n\n",
				time.Now().Format(time.RFC3339))
			if _, err := c.Writer.WriteString(heartbeat); err != nil {
				h.logger.SSE().Error("SSE heartbeat write failed", "error", err.Error())
				return
			}
			c.Writer.Flush()
		}
	}
}

// parseBucketKeys validates the comma-separated buckets query parameter
// against the registered bucket keys.
func parseBucketKeys(raw string) ([]string, error) {
	if raw == "" {
		return nil, fmt.Errorf("buckets query parameter is required")
	}

	known := make(map[string]bool, len(content.CollectionBuckets)+1)
	for _, key := range content.CollectionBuckets {
		known[key] = true
	}
	known[content.BucketBrand] = true

	keys := strings.Split(raw, ",")
	for _, key := range keys {
		if !known[key] {
			return nil, fmt.Errorf("unknown bucket %q", key)
		}
	}
	return keys, nil
}
