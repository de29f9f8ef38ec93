package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWiresCache(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "jyotish.db")
	t.Setenv("DATABASE_PATH", dbPath)
	t.Setenv("VSOP87_DIR", dir)
	t.Setenv("JYOTISH_DATA_DIR", dir)

	a, err := setup()
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.engine)
	assert.NotNil(t, a.kundlis, "compute path must go through the cache")
	assert.NotNil(t, a.maintenance)
	assert.Equal(t, dbPath, a.cfg.DatabasePath)

	// Opening the store creates the cache database on disk.
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}
