package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend keeps the document in a single JSON file. The file path plays
// the role of the fixed storage key.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend writing to the given path
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads the whole file
func (b *FileBackend) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("failed to read %s: %w", b.path, err)
	}
	return data, nil
}

// Persist replaces the file contents via a temp-file rename so a crashed
// write never leaves a half-written document behind
func (b *FileBackend) Persist(_ context.Context, data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), b.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", b.path, err)
	}
	return nil
}
