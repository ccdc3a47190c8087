package storefront_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/pkg/storage"
)

func TestOpenStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("memory with quota", func(t *testing.T) {
		t.Parallel()
		b, err := storefront.OpenStore(ctx, storefront.StorageConfig{Driver: "memory", QuotaBytes: 8})
		require.NoError(t, err)
		defer func() { assert.NoError(t, b.Close(ctx)) }()

		assert.Equal(t, storefront.DriverMemory, b.Driver)
		assert.NoError(t, b.Ping(ctx))
		require.IsType(t, &storage.MemoryStore{}, b.Store)
		assert.ErrorIs(t, b.Set(ctx, "k", "value too large"), storage.ErrQuotaExceeded)
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "store.json")
		b, err := storefront.OpenStore(ctx, storefront.StorageConfig{Driver: "FILE", Path: path})
		require.NoError(t, err)
		defer func() { assert.NoError(t, b.Close(ctx)) }()

		assert.Equal(t, storefront.DriverFile, b.Driver)
		require.NoError(t, b.Set(ctx, storage.KeyCurrentUser, "juan@example.com"))

		reopened, err := storefront.OpenStore(ctx, storefront.StorageConfig{Driver: "file", Path: path})
		require.NoError(t, err)
		v, ok, err := reopened.Get(ctx, storage.KeyCurrentUser)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "juan@example.com", v)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Parallel()
		_, err := storefront.OpenStore(ctx, storefront.StorageConfig{Driver: "sqlite"})
		assert.ErrorIs(t, err, storefront.ErrUnknownDriver)
	})
}

func TestOpenStore_CorruptFileDegrades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	b, err := storefront.OpenStore(ctx, storefront.StorageConfig{Driver: "file", Path: path})
	require.NoError(t, err)
	_, ok, err := b.Get(ctx, storage.KeySession)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := storefront.DefaultConfig()
	assert.Equal(t, storefront.DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "storefront:", cfg.Storage.Redis.KeyPrefix)
	assert.Equal(t, "kv", cfg.Storage.Mongo.Collection)
	assert.InDelta(t, 50.0, cfg.Checkout.DeliveryFee, 0)
}
