package api

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banshee-data/strategy.canvas/internal/db"
	"github.com/banshee-data/strategy.canvas/internal/i18n"
)

// migratedPreferences holds the bytes of a fully migrated, checkpointed
// preferences database. Tests copy it instead of migrating their own.
var migratedPreferences []byte

func TestMain(m *testing.M) {
	image, err := buildPreferencesImage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "preferences template: %v\n", err)
		os.Exit(1)
	}
	migratedPreferences = image
	os.Exit(m.Run())
}

func buildPreferencesImage() ([]byte, error) {
	dir, err := os.MkdirTemp("", "canvas-preferences-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "preferences.db")
	database, err := db.NewDB(path)
	if err != nil {
		return nil, err
	}
	// Fold the WAL back into the main file so a plain copy is complete.
	if _, err := database.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		database.Close()
		return nil, err
	}
	if err := database.Close(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// newPreferencesDB opens a private copy of the migrated preferences
// database. When stored is given, it is saved as the persisted language
// before the database is handed back.
func newPreferencesDB(t *testing.T, stored ...i18n.Language) *db.DB {
	t.Helper()
	require.NotEmpty(t, migratedPreferences, "preferences template not built")

	path := filepath.Join(t.TempDir(), "preferences.db")
	require.NoError(t, os.WriteFile(path, migratedPreferences, 0o600))

	database, err := db.NewDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	for _, lang := range stored {
		require.NoError(t, db.NewLanguageStore(database).Set(context.Background(), lang))
	}
	return database
}
