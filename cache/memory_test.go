package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemory()

	_, found, err := store.Get("key")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set("key", []byte("value")))
	value, found, err := store.Get("key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "value", string(value))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete("key"))
	_, found, err = store.Get("key")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, store.Len())

	require.NoError(t, store.Close())
}
