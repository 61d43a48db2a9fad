package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dgz9/codetype/internal/logger"
)

// Preference values are opaque JSON blobs keyed by name. Writes follow
// last-write-wins; there is no further consistency guarantee.

func (db *DB) GetPreference(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx).WithPrefix("db")

	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("preference not set: key=%s", key)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get preference %s: %v", key, err)
		return nil, err
	}
	return []byte(value), nil
}

func (db *DB) SetPreference(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("setting preference: key=%s", key)

	_, err := db.ExecContext(ctx, `
INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
`, key, string(value))
	if err != nil {
		log.Error("failed to set preference %s: %v", key, err)
	}
	return err
}

func (db *DB) DeletePreference(ctx context.Context, key string) error {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("deleting preference: key=%s", key)

	_, err := db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key)
	if err != nil {
		log.Error("failed to delete preference %s: %v", key, err)
	}
	return err
}
