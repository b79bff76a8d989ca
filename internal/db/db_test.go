package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/stax/internal/config"
)

// setupTestDB points the package at a throwaway sqlite file for one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	cfg := &config.Config{DatabasePath: filepath.Join(t.TempDir(), "stax.db")}
	require.NoError(t, Initialize(cfg))

	t.Cleanup(func() {
		Close()
		DB = nil
	})
}

func TestInitializeCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{DatabasePath: filepath.Join(dir, "nested", "stax.db")}

	require.NoError(t, Initialize(cfg))
	t.Cleanup(func() {
		Close()
		DB = nil
	})

	assert.FileExists(t, cfg.DatabasePath)
}

func TestInitializeRequiresPath(t *testing.T) {
	err := Initialize(&config.Config{})
	assert.Error(t, err)
}
