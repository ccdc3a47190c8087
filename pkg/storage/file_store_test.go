package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/storage"
)

func TestFileStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("persists across reopen", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "origin", "storage.json")

		store, err := storage.NewFileStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, storage.KeyCurrentUser, "Ana@Example.com"))
		require.NoError(t, store.Set(ctx, storage.KeyCart, "[]"))
		require.NoError(t, store.Remove(ctx, storage.KeyCart))

		reopened, err := storage.NewFileStore(path)
		require.NoError(t, err)

		v, ok, err := reopened.Get(ctx, storage.KeyCurrentUser)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Ana@Example.com", v)

		_, ok, err = reopened.Get(ctx, storage.KeyCart)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing file is empty", func(t *testing.T) {
		t.Parallel()
		store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "none.json"))
		require.NoError(t, err)

		_, ok, err := store.Get(ctx, storage.KeySession)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("corrupt file degrades to empty store", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

		store, err := storage.NewFileStore(path)
		assert.ErrorIs(t, err, storage.ErrCorrupt)
		require.NotNil(t, store)

		require.NoError(t, store.Set(ctx, "k", "v"))
		v, ok, _ := store.Get(ctx, "k")
		assert.True(t, ok)
		assert.Equal(t, "v", v)
	})

	t.Run("remove missing key does not touch file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "s.json")
		store, err := storage.NewFileStore(path)
		require.NoError(t, err)

		require.NoError(t, store.Remove(ctx, "missing"))
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
