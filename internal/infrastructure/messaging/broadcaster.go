// Package messaging provides the live-update fanout for collections: an
// in-process subscription registry plus the SSE client channels behind the
// subscribe endpoints.
package messaging

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
)

// Subscriber receives the full refreshed collection payload after a save.
type Subscriber func(bucketKey string, payload []byte)

// Broadcaster manages per-bucket subscriptions. Two shapes of consumer hang
// off it: named in-process subscribers (one callback per subscriber id, a
// re-subscribe under the same id replaces the previous callback) and SSE
// client channels fed by the HTTP subscribe handlers.
type Broadcaster struct {
	subscribers map[string]map[string]Subscriber // bucketKey -> subscriberID -> fn
	sseClients  map[string][]chan string         // bucketKey -> channels
	mu          sync.Mutex
	logger      *logging.ChanneledLogger
}

// NewBroadcaster creates a Broadcaster. The container owns the single
// process-wide instance and injects it; there is no package-level global.
func NewBroadcaster(logger *logging.ChanneledLogger) *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]map[string]Subscriber),
		sseClients:  make(map[string][]chan string),
		logger:      logger,
	}
}

// Subscribe registers fn for a bucket under subscriberID. Subscribing again
// with the same id replaces the earlier callback, so a consumer that renders
// one view never accumulates duplicate notifications.
func (b *Broadcaster) Subscribe(bucketKey, subscriberID string, fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subscribers[bucketKey] == nil {
		b.subscribers[bucketKey] = make(map[string]Subscriber)
	}
	if _, exists := b.subscribers[bucketKey][subscriberID]; exists {
		b.logger.SSE().Debug("Subscriber replaced", "bucketKey", bucketKey, "subscriberId", subscriberID)
	}
	b.subscribers[bucketKey][subscriberID] = fn
}

// Unsubscribe removes a named subscriber. Unknown ids are a no-op.
func (b *Broadcaster) Unsubscribe(bucketKey, subscriberID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if subs, exists := b.subscribers[bucketKey]; exists {
		delete(subs, subscriberID)
		if len(subs) == 0 {
			delete(b.subscribers, bucketKey)
		}
	}
}

// AddClient registers a new SSE client channel for a bucket.
func (b *Broadcaster) AddClient(bucketKey string) chan string {
	ch := make(chan string, 10)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.sseClients[bucketKey] = append(b.sseClients[bucketKey], ch)
	b.logger.SSE().Debug("SSE client registered", "bucketKey", bucketKey, "clients", len(b.sseClients[bucketKey]))
	return ch
}

// RemoveClient removes an SSE client channel for a bucket.
func (b *Broadcaster) RemoveClient(ch chan string, bucketKey string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if clients, exists := b.sseClients[bucketKey]; exists {
		newClients := make([]chan string, 0, len(clients))
		for _, client := range clients {
			if client != ch {
				newClients = append(newClients, client)
			}
		}
		if len(newClients) == 0 {
			delete(b.sseClients, bucketKey)
		} else {
			b.sseClients[bucketKey] = newClients
		}
	}
	b.logger.SSE().Debug("SSE client unregistered", "bucketKey", bucketKey)
}

// ConnectionCount returns the total number of live SSE channels.
func (b *Broadcaster) ConnectionCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	total := 0
	for _, clients := range b.sseClients {
		total += len(clients)
	}
	return total
}

// BroadcastCollection pushes the refreshed collection to every consumer of
// the bucket. Subscribers run synchronously under recover; SSE sends are
// non-blocking so one stalled client never holds up a save.
func (b *Broadcaster) BroadcastCollection(bucketKey string, collection any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.SSE().Error("Panic recovered in BroadcastCollection", "error", r, "bucketKey", bucketKey)
		}
	}()

	payload, err := json.Marshal(collection)
	if err != nil {
		b.logger.SSE().Error("Failed to encode collection broadcast", "error", err.Error(), "bucketKey", bucketKey)
		return
	}

	message := "event: collection_updated\ndata: {\"bucketKey\":\"" + bucketKey + "\",\"items\":" + string(payload) + "}\n\n"
	b.logger.SSE().Debug("Broadcasting collection", "bucketKey", bucketKey,
		"message", strings.ReplaceAll(message, "\n", "\\n"))

	b.mu.Lock()
	subs := make([]Subscriber, 0, len(b.subscribers[bucketKey]))
	for _, fn := range b.subscribers[bucketKey] {
		subs = append(subs, fn)
	}
	for _, ch := range b.sseClients[bucketKey] {
		select {
		case ch <- message:
		default:
			b.logger.SSE().Warn("SSE channel full, message dropped", "bucketKey", bucketKey)
		}
	}
	b.mu.Unlock()

	for _, fn := range subs {
		fn(bucketKey, payload)
	}
}
