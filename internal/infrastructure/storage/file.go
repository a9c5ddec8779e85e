// internal/infrastructure/storage/file.go
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"context"
)

// FileStore is a KV that keeps one JSON document per key in a directory.
// It is the default backend: the durable-local-storage analog of the
// browser profile, with no external service required.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates the data directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %q: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Get retrieves a value by key
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

// Set stores a key-value pair. Writes go through a temp file and a rename so
// a crash mid-write never leaves a truncated document behind.
func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// path maps a key to a file name, keeping only filesystem-safe characters
func (s *FileStore) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(s.dir, safe+".json")
}
