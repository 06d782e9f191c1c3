package bucket

import (
	"context"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
)

// BadgerStore keeps buckets in a local badger directory. It is the offline
// counterpart of SQLStore: the gallery screens that historically wrote to
// browser local storage map onto this adapter, same contract, no remote
// sync. Never silently merged with the SQL backend.
type BadgerStore struct {
	db     *badger.DB
	logger *logging.ChanneledLogger
}

// NewBadgerStore opens (or creates) a badger-backed bucket store at dir.
func NewBadgerStore(dir string, logger *logging.ChanneledLogger) (*BadgerStore, error) {
	start := time.Now()
	logger.Storage().Debug("Opening badger bucket store", "dir", dir)

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		logger.Storage().Error("Failed to open badger bucket store", "error", err.Error(), "dir", dir)
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}

	logger.Storage().Info("Badger bucket store ready", "dir", dir, "duration", time.Since(start))
	return &BadgerStore{db: db, logger: logger}, nil
}

func (s *BadgerStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	start := time.Now()

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Storage().Error("Badger bucket load failed", "error", err.Error(), "key", key)
		return nil, false, fmt.Errorf("failed to load bucket %s: %w", key, err)
	}

	s.logger.Storage().Debug("Bucket loaded from badger", "key", key, "bytes", len(value), "duration", time.Since(start))
	return value, true, nil
}

func (s *BadgerStore) Save(_ context.Context, key string, value []byte) error {
	start := time.Now()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		s.logger.Storage().Error("Badger bucket save failed", "error", err.Error(), "key", key)
		return fmt.Errorf("failed to save bucket %s: %w", key, err)
	}

	s.logger.Storage().Debug("Bucket saved to badger", "key", key, "bytes", len(value), "duration", time.Since(start))
	return nil
}

func (s *BadgerStore) Keys(_ context.Context) ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate bucket keys: %w", err)
	}
	return keys, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
