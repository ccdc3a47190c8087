package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/storefront/pkg/storage"
)

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithStore sets the backing store. Defaults to a storage.MemoryStore.
func WithStore(store storage.Store) Option {
	return func(m *Manager) {
		if store != nil {
			m.store = store
		}
	}
}

// WithConfig sets custom configuration.
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithTimeout sets the inactivity timeout.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) {
		m.config.Timeout = d
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}
