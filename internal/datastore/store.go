// Package datastore provides the JSON file persistence primitive used by the
// tenant manager. A Store keeps the whole document in memory; callers mutate
// it directly and call Write after each logical change. There are no partial
// writes and no transactions: concurrent logical operations that interleave
// without an intervening Write follow last-write-wins at file granularity.
package datastore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type Store[T any] struct {
	path string

	// mu serializes file writes so two Write calls cannot tear the file
	// itself. It does not serialize in-memory mutation.
	mu   sync.Mutex
	data *T
}

// Open loads the JSON document at path. When the file does not exist the
// empty shape is materialized and written immediately so the file exists
// from first use.
func Open[T any](path string, empty func() *T) (*Store[T], error) {
	s := &Store[T]{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		data := empty()
		if err := json.Unmarshal(raw, data); err != nil {
			return nil, fmt.Errorf("datastore: parse %s: %w", path, err)
		}
		s.data = data
	case os.IsNotExist(err):
		s.data = empty()
		if err := s.Write(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("datastore: read %s: %w", path, err)
	}

	return s, nil
}

// Data returns the mutable in-memory document.
func (s *Store[T]) Data() *T {
	return s.data
}

func (s *Store[T]) Path() string {
	return s.path
}

// Write persists the full in-memory document, replacing the file contents.
// The document is written to a temp file and renamed so a crash mid-write
// cannot leave a truncated store behind.
func (s *Store[T]) Write() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("datastore: marshal %s: %w", s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("datastore: mkdir for %s: %w", s.path, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("datastore: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("datastore: replace %s: %w", s.path, err)
	}

	return nil
}
