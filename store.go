package storefront

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/storefront/pkg/mongo"
	"github.com/dmitrymomot/storefront/pkg/redis"
	"github.com/dmitrymomot/storefront/pkg/storage"
)

// Storage drivers accepted by OpenStore.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
)

// CloseFunc releases the resources held by an opened store.
type CloseFunc func(ctx context.Context) error

// Backend is an opened store together with its lifecycle hooks.
type Backend struct {
	storage.Store
	Driver string
	Close  CloseFunc
	// Ping reports whether a remote backend is reachable.
	Ping func(ctx context.Context) error
}

func nop(context.Context) error { return nil }

// OpenStore opens the store selected by cfg.Driver.
func OpenStore(ctx context.Context, cfg StorageConfig) (*Backend, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))

	switch driver {
	case DriverMemory:
		var opts []storage.MemoryOption
		if cfg.QuotaBytes > 0 {
			opts = append(opts, storage.WithQuota(cfg.QuotaBytes))
		}
		return &Backend{Store: storage.NewMemoryStore(opts...), Driver: driver, Close: nop, Ping: nop}, nil

	case DriverFile, "":
		// A corrupt document degrades to an empty store; the next write replaces it.
		fs, err := storage.NewFileStore(cfg.Path)
		if err != nil && !errors.Is(err, storage.ErrCorrupt) {
			return nil, err
		}
		return &Backend{Store: fs, Driver: DriverFile, Close: nop, Ping: nop}, nil

	case DriverRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		s := redis.NewStore(client, cfg.Origin, redis.WithKeyPrefix(cfg.Redis.KeyPrefix))
		return &Backend{
			Store:  s,
			Driver: driver,
			Close:  func(context.Context) error { return s.Close() },
			Ping:   redis.Healthcheck(client),
		}, nil

	case DriverMongo:
		client, err := mongo.New(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		return &Backend{
			Store:  mongo.NewStore(coll, cfg.Origin),
			Driver: driver,
			Close:  client.Disconnect,
			Ping:   mongo.Healthcheck(client),
		}, nil
	}

	return nil, errors.Join(ErrUnknownDriver, fmt.Errorf("driver %q", cfg.Driver))
}
