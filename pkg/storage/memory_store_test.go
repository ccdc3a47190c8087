package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/storage"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()

		v, ok, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()

		require.NoError(t, store.Set(ctx, "k", "v1"))
		require.NoError(t, store.Set(ctx, "k", "v2"))

		v, ok, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v2", v)
		assert.Equal(t, len("k")+len("v2"), store.Size())
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()

		require.NoError(t, store.Set(ctx, "k", "v"))
		require.NoError(t, store.Remove(ctx, "k"))
		require.NoError(t, store.Remove(ctx, "k"))

		_, ok, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, store.Size())
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()

		err := store.Set(ctx, "", "v")
		assert.ErrorIs(t, err, storage.ErrStorage)
		assert.ErrorIs(t, err, storage.ErrEmptyKey)
	})

	t.Run("quota exceeded keeps previous value", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore(storage.WithQuota(10))

		require.NoError(t, store.Set(ctx, "k", "12345"))

		err := store.Set(ctx, "k", "1234567890")
		assert.ErrorIs(t, err, storage.ErrStorage)
		assert.ErrorIs(t, err, storage.ErrQuotaExceeded)

		v, _, _ := store.Get(ctx, "k")
		assert.Equal(t, "12345", v)
	})

	t.Run("overwrite within quota", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore(storage.WithQuota(10))

		require.NoError(t, store.Set(ctx, "k", "123456789"))
		require.NoError(t, store.Set(ctx, "k", "987654321"))
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "k", "v"))

		snap := store.Snapshot()
		snap["k"] = "changed"

		v, _, _ := store.Get(ctx, "k")
		assert.Equal(t, "v", v)
	})

	t.Run("injected faults", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		store := storage.NewMemoryStore(storage.WithFaults(func(op storage.Op, key string) error {
			if op == storage.OpSet && key == "locked" {
				return boom
			}
			return nil
		}))

		err := store.Set(ctx, "locked", "v")
		assert.ErrorIs(t, err, storage.ErrStorage)
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, store.Set(ctx, "open", "v"))

		_, ok, err := store.Get(ctx, "locked")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestJSONHelpers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	type record struct {
		Name string `json:"name"`
	}

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()
		require.NoError(t, storage.SetJSON(ctx, store, "r", record{Name: "latte"}))

		var got record
		found, err := storage.GetJSON(ctx, store, "r", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "latte", got.Name)
	})

	t.Run("absent key", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()

		var got record
		found, err := storage.GetJSON(ctx, store, "r", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("corrupt blob", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "r", "{not json"))

		var got record
		found, err := storage.GetJSON(ctx, store, "r", &got)
		assert.False(t, found)
		assert.ErrorIs(t, err, storage.ErrCorrupt)
	})
}
