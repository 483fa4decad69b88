package db

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/strategy.canvas/internal/i18n"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPragmasApplied(t *testing.T) {
	db := newTestDB(t)

	var journalMode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&journalMode))
	assert.Equal(t, "wal", journalMode)

	var busyTimeout int
	require.NoError(t, db.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout))
	assert.Equal(t, 5000, busyTimeout)
}

func TestMigrations(t *testing.T) {
	db := newTestDB(t)

	version, dirty, err := db.MigrateVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	// Running up again is a no-op.
	require.NoError(t, db.MigrateUp())

	require.NoError(t, db.MigrateDown())
	version, _, err = db.MigrateVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)

	var n int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='preferences'`).Scan(&n))
	assert.Zero(t, n)
}

func TestOpenDBLeavesSchemaAlone(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "raw.db"))
	require.NoError(t, err)
	defer db.Close()

	version, dirty, err := db.MigrateVersion()
	require.NoError(t, err)
	assert.Zero(t, version)
	assert.False(t, dirty)
}

func TestPreferences(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, ok, err := db.Preference(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.SetPreference(ctx, "k", "v1"))
	require.NoError(t, db.SetPreference(ctx, "k", "v2"))
	v, ok, err := db.Preference(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestLanguageStore(t *testing.T) {
	db := newTestDB(t)
	store := NewLanguageStore(db)
	ctx := context.Background()

	lang, stored, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, stored)
	assert.Equal(t, i18n.Arabic, lang, "absent preference defaults to Arabic")

	require.NoError(t, store.Set(ctx, i18n.English))
	lang, stored, err = store.Get(ctx)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, i18n.English, lang)

	assert.Error(t, store.Set(ctx, i18n.Language("fr")))
	lang, _, _ = store.Get(ctx)
	assert.Equal(t, i18n.English, lang)
}

func TestLanguageStore_CorruptValueReadsAsDefault(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.SetPreference(ctx, languageKey, "klingon"))

	lang, stored, err := NewLanguageStore(db).Get(ctx)
	require.NoError(t, err)
	assert.False(t, stored)
	assert.Equal(t, i18n.Default, lang)
}

func TestLanguageStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	db, err := NewDB(path)
	require.NoError(t, err)
	require.NoError(t, NewLanguageStore(db).Set(ctx, i18n.English))
	require.NoError(t, db.Close())

	db, err = NewDB(path)
	require.NoError(t, err)
	defer db.Close()
	lang, _, err := NewLanguageStore(db).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, i18n.English, lang)
}

func TestHandleBackup(t *testing.T) {
	db := newTestDB(t)
	w := httptest.NewRecorder()
	db.handleBackup(w, httptest.NewRequest(http.MethodGet, "/debug/backup", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/gzip", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}
