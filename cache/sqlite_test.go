package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, expiryDays int) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "cache.sqlite"), expiryDays)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteRoundTrip(t *testing.T) {
	store := openTestStore(t, 0)

	const key = "https://example.com/api/publisher/4010-10/?api_key=*****&format=json"
	require.NoError(t, store.Set(key, []byte(`{"status_code": 1}`)))

	value, found, err := store.Get(key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"status_code": 1}`, string(value))
}

func TestSQLiteMiss(t *testing.T) {
	store := openTestStore(t, 0)

	_, found, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteOverwrite(t *testing.T) {
	store := openTestStore(t, 0)

	require.NoError(t, store.Set("key", []byte("first")))
	require.NoError(t, store.Set("key", []byte("second")))

	value, found, err := store.Get("key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", string(value))
}

func TestSQLiteDelete(t *testing.T) {
	store := openTestStore(t, 0)

	require.NoError(t, store.Set("key", []byte("value")))
	require.NoError(t, store.Delete("key"))

	_, found, err := store.Get("key")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing key is not an error.
	require.NoError(t, store.Delete("key"))
}

func TestSQLiteExpiry(t *testing.T) {
	store := openTestStore(t, 7)

	require.NoError(t, store.Set("fresh", []byte("value")))
	require.NoError(t, store.Set("stale", []byte("value")))

	// Backdate one entry past the expiry window.
	backdated := time.Now().UTC().Add(-8 * 24 * time.Hour).Format(time.RFC3339)
	_, err := store.db.Exec("UPDATE cache SET timestamp = ? WHERE query = ?;", backdated, "stale")
	require.NoError(t, err)

	_, found, err := store.Get("fresh")
	require.NoError(t, err)
	assert.True(t, found)

	_, found, err = store.Get("stale")
	require.NoError(t, err)
	assert.False(t, found, "expired entries must read as misses")
}

func TestSQLiteCleanupOnOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.sqlite")

	store, err := OpenSQLite(path, 7)
	require.NoError(t, err)
	require.NoError(t, store.Set("stale", []byte("value")))

	backdated := time.Now().UTC().Add(-30 * 24 * time.Hour).Format(time.RFC3339)
	_, err = store.db.Exec("UPDATE cache SET timestamp = ? WHERE query = ?;", backdated, "stale")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path, 7)
	require.NoError(t, err)
	defer reopened.Close()

	var count int
	require.NoError(t, reopened.db.QueryRow("SELECT COUNT(*) FROM cache;").Scan(&count))
	assert.Zero(t, count, "expired entries must be purged on open")
}

func TestSQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.sqlite")

	store, err := OpenSQLite(path, 0)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}
