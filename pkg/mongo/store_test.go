package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomongo "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/storefront/pkg/mongo"
	"github.com/dmitrymomot/storefront/pkg/storage"
)

// unreachableCollection returns a collection on a server nothing listens on.
// Connecting is lazy, so only operations fail.
func unreachableCollection(t *testing.T) (*gomongo.Client, *gomongo.Collection) {
	t.Helper()
	client, err := gomongo.Connect(options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(100 * time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client, client.Database("storefront").Collection("kv")
}

func TestStore_BackendFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client, coll := unreachableCollection(t)
	store := mongo.NewStore(coll, "https://cinco.example")

	var _ storage.Store = store

	_, _, err := store.Get(ctx, storage.KeyCart)
	assert.ErrorIs(t, err, storage.ErrStorage)

	assert.ErrorIs(t, store.Set(ctx, storage.KeyCart, "[]"), storage.ErrStorage)
	assert.ErrorIs(t, store.Remove(ctx, storage.KeyCart), storage.ErrStorage)

	assert.ErrorIs(t, mongo.Healthcheck(client)(ctx), mongo.ErrHealthcheckFailed)
}

func TestStore_EmptyKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, coll := unreachableCollection(t)
	store := mongo.NewStore(coll, "https://cinco.example")

	_, _, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, storage.ErrEmptyKey)
	assert.ErrorIs(t, store.Set(ctx, "", "x"), storage.ErrEmptyKey)
	assert.NoError(t, store.Remove(ctx, ""))
}

func TestNew_InvalidURI(t *testing.T) {
	t.Parallel()

	cfg := mongo.DefaultConfig()
	cfg.ConnectionURL = "not-a-mongo-uri"
	cfg.RetryAttempts = 1
	cfg.ConnectTimeout = 200 * time.Millisecond

	_, err := mongo.New(context.Background(), cfg)
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}
