package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore implements Store backed by a single JSON file.
// The whole map is rewritten on every Set/Delete; suitable for the small
// amount of durable state this application keeps (balances), not for
// high-volume data.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStore creates a file-backed store, loading existing state if the
// file is present.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, &StoreError{Code: codeInvalid, Message: "kv file path is required"}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create kv directory: %w", err)
	}

	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read kv file: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.values); err != nil {
			return nil, fmt.Errorf("failed to parse kv file %s: %w", path, err)
		}
	}

	return s, nil
}

// Get retrieves the value stored at key.
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

// Set stores value at key and flushes the file before updating memory,
// so a failed write leaves the in-memory view consistent with disk.
func (s *FileStore) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]string, len(s.values)+1)
	for k, v := range s.values {
		next[k] = v
	}
	next[key] = value

	if err := s.flush(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

// Delete removes the value at key.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}

	next := make(map[string]string, len(s.values))
	for k, v := range s.values {
		if k != key {
			next[k] = v
		}
	}

	if err := s.flush(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

// flush writes the map to a temp file then renames it into place.
func (s *FileStore) flush(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode kv state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write kv file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace kv file: %w", err)
	}
	return nil
}
