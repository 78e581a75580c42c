package repositories

import (
	"context"
	"database/sql"
	"errors"
)

// SettingsRepository accesses the app_settings key/value table.
type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the value for key, or "" when the key has never been set.
func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM app_settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", wrapQuery("get setting", err)
	}
	return value, nil
}

// Set upserts a settings key.
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO app_settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)`, key, value)
	if err != nil {
		return wrapQuery("set setting", err)
	}
	return nil
}
