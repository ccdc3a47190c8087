package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/storefront/pkg/storage"
)

type entry struct {
	ID        string    `bson:"_id"`
	Origin    string    `bson:"origin"`
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store implements storage.Store with one document per key.
type Store struct {
	coll   *mongo.Collection
	origin string
	now    func() time.Time
}

// NewStore creates a Store scoped to origin.
func NewStore(coll *mongo.Collection, origin string) *Store {
	return &Store{coll: coll, origin: origin, now: time.Now}
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.Join(storage.ErrStorage, storage.ErrEmptyKey)
	}

	var e entry
	err := s.coll.FindOne(ctx, bson.M{"_id": s.id(key)}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Join(storage.ErrStorage, err)
	}
	return e.Value, true, nil
}

// Set upserts the document for key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.Join(storage.ErrStorage, storage.ErrEmptyKey)
	}

	e := entry{
		ID:        s.id(key),
		Origin:    s.origin,
		Key:       key,
		Value:     value,
		UpdatedAt: s.now(),
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": e.ID}, e, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Join(storage.ErrStorage, err)
	}
	return nil
}

// Remove deletes the document for key.
func (s *Store) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": s.id(key)}); err != nil {
		return errors.Join(storage.ErrStorage, err)
	}
	return nil
}

func (s *Store) id(key string) string {
	return s.origin + ":" + key
}
