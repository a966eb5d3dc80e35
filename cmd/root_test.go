package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCacheStoreFailureLeavesStoreNil(t *testing.T) {
	logger = zerolog.Nop()

	// A file where the cache directory should go makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	store = openCacheStore(filepath.Join(blocker, "cache.sqlite"), 0)
	// assert.Nil sees through typed nils; the interface itself must be nil
	// or closeStore would call Close on a nil *cache.SQLiteStore.
	assert.True(t, store == nil)
	assert.NotPanics(t, closeStore)
}

func TestOpenCacheStoreSuccess(t *testing.T) {
	logger = zerolog.Nop()

	store = openCacheStore(filepath.Join(t.TempDir(), "cache.sqlite"), 0)
	require.NotNil(t, store)
	assert.NotPanics(t, closeStore)
	assert.True(t, store == nil, "closeStore must reset the store")
}
