package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/banshee-data/strategy.canvas/internal/i18n"
	"github.com/banshee-data/strategy.canvas/internal/monitoring"
)

const languageKey = "language"

// Preference reads a stored value. ok is false when the key is absent.
func (db *DB) Preference(ctx context.Context, key string) (value string, ok bool, err error) {
	err = db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return value, true, nil
}

// SetPreference upserts a value.
func (db *DB) SetPreference(ctx context.Context, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write preference %q: %w", key, err)
	}
	return nil
}

// LanguageStore persists the UI language. An absent or unreadable value
// reads as i18n.Default.
type LanguageStore struct {
	db *DB
}

// NewLanguageStore returns a language store backed by db.
func NewLanguageStore(db *DB) *LanguageStore {
	return &LanguageStore{db: db}
}

// Get returns the stored language and whether one was stored.
func (s *LanguageStore) Get(ctx context.Context) (i18n.Language, bool, error) {
	v, ok, err := s.db.Preference(ctx, languageKey)
	if err != nil || !ok {
		return i18n.Default, false, err
	}
	lang, err := i18n.Parse(v)
	if err != nil {
		monitoring.Logf("ignoring stored language: %v", err)
		return i18n.Default, false, nil
	}
	return lang, true, nil
}

// Set stores lang.
func (s *LanguageStore) Set(ctx context.Context, lang i18n.Language) error {
	if _, err := i18n.Parse(string(lang)); err != nil {
		return err
	}
	return s.db.SetPreference(ctx, languageKey, string(lang))
}
