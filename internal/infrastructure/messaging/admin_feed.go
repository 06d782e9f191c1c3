package messaging

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/manager"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/performance"
)

// AdminClient represents a single connected admin dashboard client.
type AdminClient struct {
	Conn *websocket.Conn
	Send chan []byte
}

// BucketActivity is pushed to admin clients whenever a collection changes.
type BucketActivity struct {
	Event     string    `json:"event"`
	BucketKey string    `json:"bucketKey"`
	Items     int       `json:"items"`
	Timestamp time.Time `json:"timestamp"`
}

// FeedStats is the periodic snapshot sent to the frontend on each tick.
type FeedStats struct {
	Event           string         `json:"event"`
	CachedBuckets   []string       `json:"cachedBuckets"`
	SSEConnections  int            `json:"sseConnections"`
	OperationCounts map[string]any `json:"operationCounts"`
	Timestamp       time.Time      `json:"timestamp"`
}

// AdminFeed manages all connected admin dashboard clients over websocket.
type AdminFeed struct {
	clients     map[*AdminClient]bool
	register    chan *AdminClient
	unregister  chan *AdminClient
	cache       *manager.Manager
	broadcaster *Broadcaster
	tracker     *performance.Tracker
	logger      *logging.ChanneledLogger
	mu          sync.RWMutex
}

// NewAdminFeed creates a new admin feed instance.
func NewAdminFeed(cache *manager.Manager, broadcaster *Broadcaster, tracker *performance.Tracker, logger *logging.ChanneledLogger) *AdminFeed {
	return &AdminFeed{
		clients:     make(map[*AdminClient]bool),
		register:    make(chan *AdminClient),
		unregister:  make(chan *AdminClient),
		cache:       cache,
		broadcaster: broadcaster,
		tracker:     tracker,
		logger:      logger,
	}
}

// Run starts the feed's main loop. This should be run as a goroutine.
func (f *AdminFeed) Run() {
	ticker := time.NewTicker(20 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case client := <-f.register:
			f.mu.Lock()
			f.clients[client] = true
			f.mu.Unlock()
			f.logger.SSE().Info("Admin feed client registered", "clients", f.clientCount())

		case client := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[client]; ok {
				delete(f.clients, client)
				close(client.Send)
			}
			f.mu.Unlock()
			f.logger.SSE().Info("Admin feed client unregistered", "clients", f.clientCount())

		case <-ticker.C:
			f.broadcastStats()
		}
	}
}

// Register queues a client for registration.
func (f *AdminFeed) Register(client *AdminClient) {
	f.register <- client
}

// Unregister queues a client for unregistration.
func (f *AdminFeed) Unregister(client *AdminClient) {
	f.unregister <- client
}

// NotifyBucketChange pushes a change notice to every connected admin client.
func (f *AdminFeed) NotifyBucketChange(bucketKey string, itemCount int) {
	payload, err := json.Marshal(BucketActivity{
		Event:     "bucket_changed",
		BucketKey: bucketKey,
		Items:     itemCount,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return
	}
	f.send(payload)
}

func (f *AdminFeed) broadcastStats() {
	if f.clientCount() == 0 {
		return
	}

	stats := FeedStats{
		Event:           "feed_stats",
		CachedBuckets:   f.cache.Collections().Keys(),
		SSEConnections:  f.broadcaster.ConnectionCount(),
		OperationCounts: f.tracker.GetOverallStats(),
		Timestamp:       time.Now().UTC(),
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		f.logger.SSE().Error("Failed to encode admin feed stats", "error", err.Error())
		return
	}
	f.send(payload)
}

func (f *AdminFeed) send(payload []byte) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for client := range f.clients {
		select {
		case client.Send <- payload:
		default:
			f.logger.SSE().Warn("Admin feed client buffer full, message dropped")
		}
	}
}

func (f *AdminFeed) clientCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.clients)
}
