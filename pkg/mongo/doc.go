// Package mongo backs the storefront key-value layer with a MongoDB collection.
//
// Each stored key becomes one document identified by "<origin>:<key>", which
// keeps the per-origin isolation of browser storage while letting several
// kiosks or test rigs share the same database.
//
// # Usage
//
//	cfg := mongo.Config{
//		ConnectionURL: "mongodb://localhost:27017",
//		Database:      "storefront",
//		Collection:    "kv",
//	}
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Disconnect(ctx)
//
//	store := mongo.NewStore(client.Database(cfg.Database).Collection(cfg.Collection), "https://cinco.example")
//
// Connection attempts are retried RetryAttempts times. Store failures are
// joined with storage.ErrStorage.
package mongo
