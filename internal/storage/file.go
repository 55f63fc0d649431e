// ABOUTME: File-backed storage keeping each key in its own file under the data directory
// ABOUTME: Lists are persisted as JSON arrays, mirroring the browser localStorage format

package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists user state as one file per key in dataDir. List keys
// hold JSON string arrays; value keys hold the raw value.
type FileStore struct {
	dataDir string
}

// Compile-time check that FileStore implements Store.
var _ Store = (*FileStore)(nil)

// NewFileStore creates a file-backed store rooted at dataDir.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{dataDir: dataDir}, nil
}

// Close releases resources. For FileStore this is a no-op.
func (s *FileStore) Close() error {
	return nil
}

// keyPath maps a key to its backing file. Keys are internal constants, but
// path separators are stripped anyway so a bad key cannot escape dataDir.
func (s *FileStore) keyPath(key string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dataDir, name+".json")
}

// GetList returns the list stored under key. Absent or malformed content
// yields an empty list; parse failures are logged and swallowed.
func (s *FileStore) GetList(key string) ([]string, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		log.Printf("warning: malformed %s data, treating as empty: %v", key, err)
		return []string{}, nil
	}
	return values, nil
}

// SetList replaces the list stored under key.
func (s *FileStore) SetList(key string, values []string) error {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return atomicWrite(s.keyPath(key), data)
}

// GetValue returns the raw value stored under key, or "" if absent.
func (s *FileStore) GetValue(key string) (string, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetValue replaces the value stored under key.
func (s *FileStore) SetValue(key, value string) error {
	return atomicWrite(s.keyPath(key), []byte(value))
}

// atomicWrite writes data via a temp file and rename so a crash mid-write
// never leaves a truncated state file behind.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
