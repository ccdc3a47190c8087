package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/storefront/pkg/storage"
)

// Store implements storage.Store on top of a Redis client.
// Keys never expire: session expiry is decided by the session manager, not by TTLs.
type Store struct {
	db     redis.UniversalClient
	prefix string
	origin string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKeyPrefix sets the namespace prefix prepended to every key.
func WithKeyPrefix(prefix string) StoreOption {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// NewStore creates a Store scoped to origin.
func NewStore(client redis.UniversalClient, origin string, opts ...StoreOption) *Store {
	s := &Store{
		db:     client,
		prefix: "storefront:",
		origin: origin,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the value stored under key; redis.Nil is reported as absent.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.Join(storage.ErrStorage, storage.ErrEmptyKey)
	}
	val, err := s.db.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Join(storage.ErrStorage, err)
	}
	return val, true, nil
}

// Set stores value under key without expiration.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.Join(storage.ErrStorage, storage.ErrEmptyKey)
	}
	if err := s.db.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return errors.Join(storage.ErrStorage, err)
	}
	return nil
}

// Remove deletes key. Deleting a missing key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.db.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Join(storage.ErrStorage, err)
	}
	return nil
}

// Close terminates the Redis connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) key(key string) string {
	return s.prefix + s.origin + ":" + key
}
