package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoon-dev/AI-Trading-Advisor-Backend/internal/apperrors"
)

// SQLiteStore persists cache records in the signal_cache table of the local
// SQLite database. Writes are last-writer-wins; the orchestrator never runs
// two syncs for the same key concurrently on purpose.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore with the provided database connection.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get returns the stored payload for key, if present.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM signal_cache WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: query signal_cache: %v", apperrors.ErrCacheUnavailable, err)
	}
	return payload, true, nil
}

// Set stores payload under key, overwriting any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO signal_cache (key, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("%w: upsert signal_cache: %v", apperrors.ErrCacheUnavailable, err)
	}
	return nil
}

// Keys returns all stored cache keys, used by the scheduler to warm known
// series.
func (s *SQLiteStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM signal_cache ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: query signal_cache keys: %v", apperrors.ErrCacheUnavailable, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: scan signal_cache key: %v", apperrors.ErrCacheUnavailable, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate signal_cache keys: %v", apperrors.ErrCacheUnavailable, err)
	}
	return keys, nil
}
