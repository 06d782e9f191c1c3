package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/infrastructure/caching/stores"
	"github.com/royalacademy/academy-go/internal/infrastructure/messaging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/persistence/bucket"
	"github.com/stretchr/testify/require"
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

func newDepartmentRepo(t *testing.T, store bucket.Store) *Repository[content.Department] {
	t.Helper()
	logger := newTestLogger(t)
	return NewRepository(
		content.BucketDepartments,
		content.DefaultDepartments,
		store,
		stores.NewCollectionStore(),
		messaging.NewBroadcaster(logger),
		nil,
		logger,
	)
}

func TestFindAllSeedsMissingBucket(t *testing.T) {
	store := bucket.NewMemoryStore()
	repo := newDepartmentRepo(t, store)

	items, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, content.DefaultDepartments(), items)

	// The seed must be durable, not just cached.
	raw, found, err := store.Load(context.Background(), content.BucketDepartments)
	require.NoError(t, err)
	require.True(t, found)

	var persisted []content.Department
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Equal(t, items, persisted)
}

func TestSeedingIsIdempotentAcrossLoads(t *testing.T) {
	store := bucket.NewMemoryStore()
	repo := newDepartmentRepo(t, store)

	first, err := repo.FindAll(context.Background())
	require.NoError(t, err)

	again, err := newDepartmentRepo(t, store).FindAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, again)
}

func TestRoundTripPreservesOrderAndFields(t *testing.T) {
	store := bucket.NewMemoryStore()
	repo := newDepartmentRepo(t, store)

	saved := []content.Department{
		{ID: "z-last-alphabetically", Title: "Zoology", Icon: "beaker"},
		{ID: "a-first-alphabetically", Title: "Arts", Icon: "palette", Programs: []string{"Drawing", "Music"}},
	}
	require.NoError(t, repo.ReplaceAll(context.Background(), saved))

	// Fresh repository, fresh cache: the read comes from the store.
	loaded, err := newDepartmentRepo(t, store).FindAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, saved, loaded)
}

func TestUndecodableBucketReseeds(t *testing.T) {
	store := bucket.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), content.BucketDepartments, []byte("{corrupt")))

	items, err := newDepartmentRepo(t, store).FindAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, content.DefaultDepartments(), items)
}

func TestFindByID(t *testing.T) {
	repo := newDepartmentRepo(t, bucket.NewMemoryStore())

	item, err := repo.FindByID(context.Background(), "seed-dept-science")
	require.NoError(t, err)
	require.Equal(t, "Science", item.Title)

	_, err = repo.FindByID(context.Background(), "no-such-id")
	require.Error(t, err)
}

func TestReplaceAllRejectsDuplicateIDs(t *testing.T) {
	repo := newDepartmentRepo(t, bucket.NewMemoryStore())

	err := repo.ReplaceAll(context.Background(), []content.Department{
		{ID: "dup", Title: "One"},
		{ID: "dup", Title: "Two"},
	})
	require.Error(t, err)
}

// failingStore stands in for a bucket backend whose transport is down.
type failingStore struct {
	loads int
	saves int
}

func (s *failingStore) Load(context.Context, string) ([]byte, bool, error) {
	s.loads++
	return nil, false, fmt.Errorf("transport down")
}

func (s *failingStore) Save(context.Context, string, []byte) error {
	s.saves++
	return fmt.Errorf("transport down")
}

func (s *failingStore) Keys(context.Context) ([]string, error) {
	return nil, fmt.Errorf("transport down")
}

func (s *failingStore) Close() error { return nil }

func TestFindAllDegradesToDefaultsWhenStoreUnreachable(t *testing.T) {
	store := &failingStore{}
	repo := newDepartmentRepo(t, store)

	items, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, content.DefaultDepartments(), items)

	// No seed write is attempted against a failing store.
	require.Zero(t, store.saves)

	// The fallback must not stick in the cache; the next read retries.
	_, err = repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, store.loads)

	// Writes still fail loudly.
	err = repo.ReplaceAll(context.Background(), []content.Department{{ID: "x", Title: "X"}})
	require.Error(t, err)
}

func TestReplaceAllNotifiesSubscribers(t *testing.T) {
	store := bucket.NewMemoryStore()
	logger := newTestLogger(t)
	broadcaster := messaging.NewBroadcaster(logger)
	repo := NewRepository(
		content.BucketDepartments,
		content.DefaultDepartments,
		store,
		stores.NewCollectionStore(),
		broadcaster,
		nil,
		logger,
	)

	var delivered []content.Department
	broadcaster.Subscribe(content.BucketDepartments, "repo-test-subscriber", func(_ string, payload []byte) {
		delivered = nil
		require.NoError(t, json.Unmarshal(payload, &delivered))
	})
	defer broadcaster.Unsubscribe(content.BucketDepartments, "repo-test-subscriber")

	saved := []content.Department{{ID: "only", Title: "Only"}}
	require.NoError(t, repo.ReplaceAll(context.Background(), saved))
	require.Equal(t, saved, delivered)
}
