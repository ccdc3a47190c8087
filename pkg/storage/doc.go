// Package storage provides the durable key-value layer every other storefront
// component persists through.
//
// The layer mirrors browser-local storage: string keys, opaque string values,
// one namespace per origin. All higher level records (session, account table,
// cart) are JSON blobs stored under the well-known keys declared in keys.go.
//
// # Implementations
//
//   - MemoryStore: concurrent in-memory map with an optional byte quota, used by
//     tests and by short-lived pages.
//   - FileStore: a single JSON document per origin, rewritten atomically on every
//     mutation so a crash never leaves a torn file behind.
//   - redis.Store and mongo.Store in their own packages for shared backends.
//
// # Usage
//
//	store := storage.NewMemoryStore()
//	_ = store.Set(ctx, storage.KeyCurrentUser, "ana@example.com")
//	v, ok, err := store.Get(ctx, storage.KeyCurrentUser)
//
// JSON helpers decode records and report undecodable blobs with ErrCorrupt so
// callers can degrade to an empty default:
//
//	var items []cart.LineItem
//	found, err := storage.GetJSON(ctx, store, storage.KeyCart, &items)
//
// # Error Handling
//
// Every backend failure is joined with ErrStorage. Callers are expected to log
// and continue with in-memory defaults rather than abort the page.
package storage
