package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
)

// FileStore implements Store on top of a single JSON document.
// The whole document is rewritten atomically on every mutation.
type FileStore struct {
	mu    sync.Mutex
	path  string
	items map[string]string
}

// NewFileStore opens the document at path, creating its directory if needed.
// A missing file yields an empty store; an undecodable file is reported with ErrCorrupt
// together with a usable empty store so callers may choose to continue.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Join(ErrStorage, err)
	}

	fs := &FileStore{path: path, items: make(map[string]string)}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fs, nil
	case err != nil:
		return nil, errors.Join(ErrStorage, err)
	case len(bytes.TrimSpace(data)) == 0:
		return fs, nil
	}

	if err := json.Unmarshal(data, &fs.items); err != nil {
		fs.items = make(map[string]string)
		return fs, errors.Join(ErrCorrupt, err)
	}
	return fs, nil
}

// Path returns the location of the backing document.
func (f *FileStore) Path() string {
	return f.path
}

// Get returns the value stored under key.
func (f *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.Join(ErrStorage, ErrEmptyKey)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.items[key]
	return v, ok, nil
}

// Set stores value under key and commits the document.
func (f *FileStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return errors.Join(ErrStorage, ErrEmptyKey)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	next := maps.Clone(f.items)
	next[key] = value
	if err := f.commit(next); err != nil {
		return err
	}
	f.items = next
	return nil
}

// Remove deletes key and commits the document.
func (f *FileStore) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[key]; !ok {
		return nil
	}

	next := maps.Clone(f.items)
	delete(next, key)
	if err := f.commit(next); err != nil {
		return err
	}
	f.items = next
	return nil
}

func (f *FileStore) commit(items map[string]string) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Join(ErrStorage, err)
	}
	if err := atomic.WriteFile(f.path, bytes.NewReader(data)); err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}
