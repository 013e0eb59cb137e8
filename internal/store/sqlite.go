package store

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	lerrors "lumen/internal/errors"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly
)

// SQLiteStore persists preferences in a single-table kv schema.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// buildDSN creates a read-write WAL DSN for the given path.
func buildDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	u.RawQuery = q.Encode()
	return u.String()
}

// OpenSQLite opens (creating if necessary) the preference database at path.
// Returns a storage_unavailable error when the database cannot be opened;
// callers fall back to a MemoryStore.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	//nolint:gosec // G301: Preference directory needs standard permissions
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, lerrors.New(lerrors.CodeStorageUnavailable, "", fmt.Errorf("create store directory: %w", err))
	}

	db, err := sql.Open("sqlite", buildDSN(path))
	if err != nil {
		return nil, lerrors.New(lerrors.CodeStorageUnavailable, "", fmt.Errorf("open prefs db: %w", err))
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, lerrors.New(lerrors.CodeStorageUnavailable, "", fmt.Errorf("ping prefs db: %w", err))
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS prefs (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, lerrors.New(lerrors.CodeStorageUnavailable, "", fmt.Errorf("create prefs table: %w", err))
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Get returns the stored value for key, if any. Query errors read as absent.
func (s *SQLiteStore) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set upserts value under key.
func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return lerrors.New(lerrors.CodeStorageUnavailable, "", fmt.Errorf("write pref %s: %w", key, err))
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the on-disk location of the store.
func (s *SQLiteStore) Path() string {
	return s.path
}

// DefaultPath returns the preference database location under the user home.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, ".lumen", "prefs.db"), nil
}
