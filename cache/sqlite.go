package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const createTable = `
CREATE TABLE IF NOT EXISTS cache (
	query TEXT NOT NULL PRIMARY KEY,
	response TEXT,
	timestamp TEXT
);`

// SQLiteStore is a Store backed by a single embedded SQLite file.
type SQLiteStore struct {
	db     *sql.DB
	expiry time.Duration
}

// OpenSQLite opens (creating if necessary) the cache database at path.
// expiryDays sets how long entries stay valid; zero keeps them forever.
// Expired entries are purged on open and ignored on Get.
func OpenSQLite(path string, expiryDays int) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache table: %w", err)
	}

	s := &SQLiteStore{db: db}
	if expiryDays > 0 {
		s.expiry = time.Duration(expiryDays) * 24 * time.Hour
		if err := s.cleanup(); err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}

// Get implements Store.
func (s *SQLiteStore) Get(key string) ([]byte, bool, error) {
	var response, timestamp string
	err := s.db.QueryRow(
		"SELECT response, timestamp FROM cache WHERE query = ?;", key,
	).Scan(&response, &timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if s.expiry > 0 {
		stored, err := time.Parse(time.RFC3339, timestamp)
		if err != nil || time.Since(stored) > s.expiry {
			return nil, false, nil
		}
	}
	return []byte(response), true, nil
}

// Set implements Store.
func (s *SQLiteStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO cache (query, response, timestamp) VALUES (?, ?, ?)
		 ON CONFLICT(query) DO UPDATE SET
		   response = excluded.response,
		   timestamp = excluded.timestamp;`,
		key, string(value), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Delete implements Store.
func (s *SQLiteStore) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM cache WHERE query = ?;", key)
	return err
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// cleanup removes all expired entries.
func (s *SQLiteStore) cleanup() error {
	cutoff := time.Now().UTC().Add(-s.expiry).Format(time.RFC3339)
	_, err := s.db.Exec("DELETE FROM cache WHERE timestamp < ?;", cutoff)
	return err
}
