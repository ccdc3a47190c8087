package session

import (
	"context"
	"errors"

	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/storage"
)

// load reads the stored session. Read failures and corrupt records are
// logged and reported as absent.
func (m *Manager) load(ctx context.Context) *Session {
	var s Session
	found, err := storage.GetJSON(ctx, m.store, storage.KeySession, &s)
	if err != nil {
		m.logger.WarnContext(ctx, "session record unreadable, treating as absent",
			logger.Key(storage.KeySession),
			logger.Error(err),
		)
		return nil
	}
	if !found {
		return nil
	}
	return &s
}

func (m *Manager) save(ctx context.Context, s *Session) error {
	if err := storage.SetJSON(ctx, m.store, storage.KeySession, s); err != nil {
		return errors.Join(ErrPersistFailed, err)
	}
	return nil
}

// purge removes every key owned by an authenticated session.
func (m *Manager) purge(ctx context.Context) error {
	var errs []error
	for _, key := range []string{
		storage.KeySession,
		storage.KeyCurrentUser,
		storage.KeyCart,
		storage.KeyCartTotal,
	} {
		if err := m.store.Remove(ctx, key); err != nil {
			m.logger.ErrorContext(ctx, "failed to remove session key",
				logger.Key(key),
				logger.Error(err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
