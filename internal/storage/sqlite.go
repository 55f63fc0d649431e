// ABOUTME: SQLite storage backend using modernc.org/sqlite (pure Go)
// ABOUTME: Persists user-state keys in a single key-value table

package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a single key-value table.
type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check that SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) a SQLite-backed store at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS user_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM user_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO user_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

// GetList returns the list stored under key. Absent or malformed content
// yields an empty list; parse failures are logged and swallowed.
func (s *SQLiteStore) GetList(key string) ([]string, error) {
	raw, ok, err := s.get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		log.Printf("warning: malformed %s data, treating as empty: %v", key, err)
		return []string{}, nil
	}
	return values, nil
}

// SetList replaces the list stored under key.
func (s *SQLiteStore) SetList(key string, values []string) error {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.set(key, string(data))
}

// GetValue returns the raw value stored under key, or "" if absent.
func (s *SQLiteStore) GetValue(key string) (string, error) {
	raw, _, err := s.get(key)
	return raw, err
}

// SetValue replaces the value stored under key.
func (s *SQLiteStore) SetValue(key, value string) error {
	return s.set(key, value)
}
