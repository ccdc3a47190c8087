package storage

import (
	"context"
	"encoding/json"
	"errors"
)

// GetJSON decodes the blob stored under key into v.
// It reports false with a nil error when the key is absent and joins ErrCorrupt
// when the blob is not valid JSON for v.
func GetJSON[T any](ctx context.Context, s Store, key string, v *T) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, errors.Join(ErrCorrupt, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Join(ErrStorage, err)
	}
	return s.Set(ctx, key, string(data))
}
