package messaging

import (
	"log/slog"
	"testing"

	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
)

func newTestLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
		DefaultLevel:    slog.LevelError + 1,
		ChannelLevels:   map[logging.Channel]slog.Level{},
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return logger
}

func TestBroadcastersAreIndependent(t *testing.T) {
	logger := newTestLogger(t)
	first := NewBroadcaster(logger)
	second := NewBroadcaster(logger)
	const bucketKey = "test-independent-bucket"

	calls := 0
	first.Subscribe(bucketKey, "viewer", func(string, []byte) { calls++ })

	second.BroadcastCollection(bucketKey, []string{"x"})
	if calls != 0 {
		t.Errorf("subscriber on one broadcaster saw %d broadcasts from another", calls)
	}

	first.BroadcastCollection(bucketKey, []string{"x"})
	if calls != 1 {
		t.Errorf("subscriber invoked %d times on its own broadcaster, want 1", calls)
	}
}

func TestResubscribeReplacesCallback(t *testing.T) {
	b := NewBroadcaster(newTestLogger(t))
	const bucketKey = "test-replace-bucket"
	defer b.Unsubscribe(bucketKey, "viewer")

	firstCalls, secondCalls := 0, 0
	b.Subscribe(bucketKey, "viewer", func(string, []byte) { firstCalls++ })
	b.Subscribe(bucketKey, "viewer", func(string, []byte) { secondCalls++ })

	b.BroadcastCollection(bucketKey, []string{"x"})

	if firstCalls != 0 {
		t.Errorf("replaced callback still invoked %d times", firstCalls)
	}
	if secondCalls != 1 {
		t.Errorf("current callback invoked %d times, want 1", secondCalls)
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	b := NewBroadcaster(newTestLogger(t))
	const bucketKey = "test-unsub-bucket"

	calls := 0
	b.Subscribe(bucketKey, "viewer", func(string, []byte) { calls++ })

	b.Unsubscribe(bucketKey, "viewer")
	b.Unsubscribe(bucketKey, "viewer") // second call is a no-op
	b.Unsubscribe(bucketKey, "never-registered")

	b.BroadcastCollection(bucketKey, []string{"x"})
	if calls != 0 {
		t.Errorf("unsubscribed callback invoked %d times", calls)
	}
}

func TestSSEClientReceivesWholeCollectionEvent(t *testing.T) {
	b := NewBroadcaster(newTestLogger(t))
	const bucketKey = "test-sse-bucket"

	ch := b.AddClient(bucketKey)
	defer func() {
		b.RemoveClient(ch, bucketKey)
		close(ch)
	}()

	b.BroadcastCollection(bucketKey, []string{"alpha", "beta"})

	select {
	case message := <-ch:
		want := "event: collection_updated\ndata: {\"bucketKey\":\"" + bucketKey + "\",\"items\":[\"alpha\",\"beta\"]}\n\n"
		if message != want {
			t.Errorf("message = %q, want %q", message, want)
		}
	default:
		t.Fatal("no message delivered to SSE client")
	}
}

func TestBroadcastNeverBlocksOnFullClient(t *testing.T) {
	b := NewBroadcaster(newTestLogger(t))
	const bucketKey = "test-full-bucket"

	ch := b.AddClient(bucketKey)
	defer func() {
		b.RemoveClient(ch, bucketKey)
		close(ch)
	}()

	// Fill the channel past its buffer; the extra sends must drop, not hang.
	for i := 0; i < 20; i++ {
		b.BroadcastCollection(bucketKey, []int{i})
	}

	if got := len(ch); got != cap(ch) {
		t.Errorf("buffered %d messages, want %d", got, cap(ch))
	}
}

func TestConnectionCount(t *testing.T) {
	b := NewBroadcaster(newTestLogger(t))
	const bucketKey = "test-count-bucket"

	before := b.ConnectionCount()
	ch := b.AddClient(bucketKey)
	if got := b.ConnectionCount(); got != before+1 {
		t.Errorf("count = %d, want %d", got, before+1)
	}

	b.RemoveClient(ch, bucketKey)
	close(ch)
	if got := b.ConnectionCount(); got != before {
		t.Errorf("count after remove = %d, want %d", got, before)
	}
}
