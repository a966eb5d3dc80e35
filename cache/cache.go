// Package cache persists raw Comic Vine responses keyed by their canonical
// request signature, so identical logical requests are served without a
// second network call.
package cache

import (
	"os"
	"path/filepath"
)

// Store is the interface for cache backends.
type Store interface {
	// Get retrieves the cached response for a key. The second return is
	// false on a miss or an expired entry.
	Get(key string) (value []byte, found bool, err error)
	// Set stores a response, overwriting any previous entry for the key.
	Set(key string, value []byte) error
	// Delete removes an entry. Deleting a missing key is not an error.
	Delete(key string) error
	// Close releases the backing resources.
	Close() error
}

// DefaultPath returns the default location of the cache file, under the
// user cache directory.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "longbox", "cache.sqlite"), nil
}
