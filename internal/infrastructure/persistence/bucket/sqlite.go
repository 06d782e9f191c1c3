package bucket

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/pkg/config"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// SQLStore keeps buckets in a single table, one row per key. The same
// implementation serves a local sqlite3 file and a hosted libsql (Turso)
// database; only the driver and DSN differ.
type SQLStore struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

const createBucketsTable = `CREATE TABLE IF NOT EXISTS buckets (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// NewSQLStore opens the bucket table over the given database/sql driver.
// driverName is "sqlite3" for a local file or "libsql" for a hosted URL.
func NewSQLStore(driverName, dataSourceName string, logger *logging.ChanneledLogger) (*SQLStore, error) {
	start := time.Now()
	logger.Storage().Debug("Opening bucket database", "driverName", driverName)

	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		logger.Storage().Error("Failed to open bucket database", "error", err.Error(), "driverName", driverName)
		return nil, fmt.Errorf("failed to open bucket database: %w", err)
	}

	if err := db.Ping(); err != nil {
		logger.Storage().Error("Bucket database ping failed", "error", err.Error(), "driverName", driverName)
		return nil, fmt.Errorf("bucket database ping failed: %w", err)
	}

	if _, err := db.Exec(createBucketsTable); err != nil {
		return nil, fmt.Errorf("failed to create buckets table: %w", err)
	}

	logger.Storage().Info("Bucket database ready", "driverName", driverName, "duration", time.Since(start))
	return &SQLStore{db: db, logger: logger}, nil
}

func (s *SQLStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT value FROM buckets WHERE key = ?`

	start := time.Now()
	s.logger.Storage().Debug("Loading bucket", "key", key)

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Storage().Error("Bucket load failed", "error", err.Error(), "key", key)
		return nil, false, fmt.Errorf("failed to load bucket %s: %w", key, err)
	}

	duration := time.Since(start)
	s.logger.Storage().Info("Bucket loaded", "key", key, "bytes", len(value), "duration", duration)
	if duration > config.SlowQueryThreshold {
		s.logger.LogSlowQuery(query, duration, key)
	}
	return []byte(value), true, nil
}

func (s *SQLStore) Save(ctx context.Context, key string, value []byte) error {
	// Upsert so that the concurrent first-load seed race degenerates to
	// last-writer-wins on identical content instead of a constraint error.
	query := `INSERT INTO buckets (key, value, updated_at) VALUES (?, ?, ?)
	          ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	start := time.Now()
	s.logger.Storage().Debug("Saving bucket", "key", key, "bytes", len(value))

	_, err := s.db.ExecContext(ctx, query, key, string(value), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		s.logger.Storage().Error("Bucket save failed", "error", err.Error(), "key", key)
		return fmt.Errorf("failed to save bucket %s: %w", key, err)
	}

	duration := time.Since(start)
	s.logger.Storage().Info("Bucket saved", "key", key, "bytes", len(value), "duration", duration)
	if duration > config.SlowQueryThreshold {
		s.logger.LogSlowQuery(query, duration, key)
	}
	return nil
}

func (s *SQLStore) Keys(ctx context.Context) ([]string, error) {
	query := `SELECT key FROM buckets ORDER BY key`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bucket keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan bucket key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
