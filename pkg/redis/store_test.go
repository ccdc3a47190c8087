package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/redis"
	"github.com/dmitrymomot/storefront/pkg/storage"
)

// unreachableClient points at a port nothing listens on.
func unreachableClient(t *testing.T) *goredis.Client {
	t.Helper()
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestStore_BackendFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := redis.NewStore(unreachableClient(t), "https://cinco.example")

	var _ storage.Store = store

	_, _, err := store.Get(ctx, storage.KeySession)
	assert.ErrorIs(t, err, storage.ErrStorage)

	err = store.Set(ctx, storage.KeySession, "{}")
	assert.ErrorIs(t, err, storage.ErrStorage)

	err = store.Remove(ctx, storage.KeySession)
	assert.ErrorIs(t, err, storage.ErrStorage)
}

func TestStore_EmptyKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := redis.NewStore(unreachableClient(t), "origin")

	_, _, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, storage.ErrEmptyKey)
	assert.NoError(t, store.Remove(ctx, ""))
}

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("invalid url", func(t *testing.T) {
		t.Parallel()
		_, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: "://bad"})
		assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
	})

	t.Run("unreachable server", func(t *testing.T) {
		t.Parallel()
		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  "redis://127.0.0.1:1/0",
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: 2 * time.Second,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, redis.ErrRedisNotReady)
	})
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()
	err := redis.Healthcheck(unreachableClient(t))(context.Background())
	assert.ErrorIs(t, err, redis.ErrHealthcheckFailed)
}
