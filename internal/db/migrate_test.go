package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemoryAppliesMigrations(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	var name string
	err = database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'runs'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "runs", name)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	// Re-running all migrations against an up-to-date schema must succeed.
	assert.NoError(t, Migrate(database))
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("GANTTVIZ_DB", "/tmp/custom.db")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", path)
}

func TestDefaultPath_FallsBackToHome(t *testing.T) {
	t.Setenv("GANTTVIZ_DB", "")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Contains(t, path, ".ganttviz")
}
