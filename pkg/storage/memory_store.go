package storage

import (
	"context"
	"errors"
	"maps"
	"sync"
)

// MemoryStore implements Store using an in-memory map.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
	size  int
	quota int
	fault FaultFunc
}

// Op identifies a store operation passed to a FaultFunc.
type Op string

const (
	OpGet    Op = "get"
	OpSet    Op = "set"
	OpRemove Op = "remove"
)

// FaultFunc returns a non-nil error to make the operation on key fail.
type FaultFunc func(op Op, key string) error

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithQuota limits the total size of keys and values in bytes. Zero disables the limit.
func WithQuota(bytes int) MemoryOption {
	return func(m *MemoryStore) {
		if bytes > 0 {
			m.quota = bytes
		}
	}
}

// WithFaults injects failures into store operations.
func WithFaults(fn FaultFunc) MemoryOption {
	return func(m *MemoryStore) {
		m.fault = fn
	}
}

func (m *MemoryStore) injected(op Op, key string) error {
	if m.fault == nil {
		return nil
	}
	if err := m.fault(op, key); err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	m := &MemoryStore{items: make(map[string]string)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the value stored under key.
func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.Join(ErrStorage, ErrEmptyKey)
	}
	if err := m.injected(OpGet, key); err != nil {
		return "", false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	return v, ok, nil
}

// Set stores value under key. Fails with ErrQuotaExceeded when the quota would be exceeded.
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return errors.Join(ErrStorage, ErrEmptyKey)
	}
	if err := m.injected(OpSet, key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	size := m.size + len(key) + len(value)
	if prev, ok := m.items[key]; ok {
		size -= len(key) + len(prev)
	}
	if m.quota > 0 && size > m.quota {
		return errors.Join(ErrStorage, ErrQuotaExceeded)
	}

	m.items[key] = value
	m.size = size
	return nil
}

// Remove deletes key.
func (m *MemoryStore) Remove(_ context.Context, key string) error {
	if err := m.injected(OpRemove, key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.items[key]; ok {
		m.size -= len(key) + len(prev)
		delete(m.items, key)
	}
	return nil
}

// Snapshot returns a copy of all stored entries.
func (m *MemoryStore) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.items)
}

// Size returns the number of bytes currently used by keys and values.
func (m *MemoryStore) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.size
}
