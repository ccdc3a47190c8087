// Package redis backs the storefront key-value layer with a Redis server.
//
// Several browsing origins can share one Redis database: every key is stored
// under "<prefix><origin>:<key>", so pages of different origins never observe
// each other's session, account table or cart.
//
// # Usage
//
//	cfg := redis.Config{
//	    ConnectionURL:  "redis://localhost:6379/0",
//	    KeyPrefix:      "storefront:",
//	    RetryAttempts:  3,
//	    RetryInterval:  time.Second,
//	    ConnectTimeout: 10 * time.Second,
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // redis is unreachable
//	}
//	defer client.Close()
//
//	store := redis.NewStore(client, "https://cinco.example", redis.WithKeyPrefix(cfg.KeyPrefix))
//
// Store satisfies storage.Store. Failures are joined with storage.ErrStorage.
//
// # Errors
//
// Connection failures are reported with ErrFailedToParseRedisConnString or
// ErrRedisNotReady, joined with the go-redis cause.
package redis
