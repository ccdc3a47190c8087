package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/storage"
)

// ActivityResult is the outcome of RecordActivity.
type ActivityResult int

const (
	// ActivityNone means no session is stored.
	ActivityNone ActivityResult = iota
	// ActivityRefreshed means the session was valid and has been refreshed.
	ActivityRefreshed
	// ActivityExpired means the session was invalid and has been terminated.
	ActivityExpired
)

func (r ActivityResult) String() string {
	switch r {
	case ActivityRefreshed:
		return "refreshed"
	case ActivityExpired:
		return "expired"
	default:
		return "none"
	}
}

// TerminateHook runs after a session has been terminated.
type TerminateHook func(ctx context.Context)

// Manager handles session operations.
type Manager struct {
	mu     sync.Mutex
	store  storage.Store
	config Config
	now    func() time.Time
	logger *slog.Logger

	hooksMu sync.RWMutex
	hooks   []TerminateHook
}

// New creates a new session manager with the given options.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		now:    time.Now,
		logger: logger.Discard(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = storage.NewMemoryStore()
	}
	if m.config.Timeout <= 0 {
		m.config.Timeout = DefaultConfig().Timeout
	}
	m.logger = m.logger.With(logger.Component("session"))

	return m
}

// Timeout returns the configured inactivity timeout.
func (m *Manager) Timeout() time.Duration {
	return m.config.Timeout
}

// OnTerminate registers a hook that runs after every termination.
func (m *Manager) OnTerminate(hook TerminateHook) {
	if hook == nil {
		return
	}
	m.hooksMu.Lock()
	m.hooks = append(m.hooks, hook)
	m.hooksMu.Unlock()
}

// Create starts a new session for subject, replacing any existing one.
// If the current-user marker cannot be written the session write is undone.
func (m *Manager) Create(ctx context.Context, subject string) (*Session, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, ErrEmptySubject
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	token, err := generateToken(now)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Subject:   subject,
		Token:     token,
		CreatedAt: now,
		Active:    true,
	}
	s.touch(now, m.config.Timeout)

	if err := m.save(ctx, s); err != nil {
		m.logger.ErrorContext(ctx, "failed to persist session", logger.Subject(subject), logger.Error(err))
		return nil, err
	}

	if err := m.store.Set(ctx, storage.KeyCurrentUser, subject); err != nil {
		if rbErr := m.store.Remove(ctx, storage.KeySession); rbErr != nil {
			err = errors.Join(err, rbErr)
		}
		m.logger.ErrorContext(ctx, "failed to persist current user marker, session rolled back",
			logger.Subject(subject),
			logger.Error(err),
		)
		return nil, errors.Join(ErrPersistFailed, err)
	}

	m.logger.InfoContext(ctx, "session created", logger.Subject(subject))
	c := *s
	return &c, nil
}

// Current returns the stored session regardless of validity.
func (m *Manager) Current(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.load(ctx)
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// IsValid reports whether a usable session exists.
func (m *Manager) IsValid(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.load(ctx).ValidAt(m.now(), m.config.Timeout)
}

// CurrentSubject returns the subject of a valid session. An expired but
// present session yields false.
func (m *Manager) CurrentSubject(ctx context.Context) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.load(ctx)
	if !s.ValidAt(m.now(), m.config.Timeout) {
		return "", false
	}
	return s.Subject, true
}

// Refresh advances the activity and expiry timestamps. It is a no-op without
// a session and returns ErrSessionExpired, leaving the record untouched, when
// the session is no longer valid. An expired session is never revived; the
// checkout gate reports this as checkout.ErrAuthenticationRequired.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.load(ctx)
	if s == nil {
		return nil
	}

	now := m.now()
	if !s.ValidAt(now, m.config.Timeout) {
		return ErrSessionExpired
	}

	s.touch(now, m.config.Timeout)
	if err := m.save(ctx, s); err != nil {
		m.logger.WarnContext(ctx, "failed to persist session refresh", logger.Subject(s.Subject), logger.Error(err))
		return err
	}
	return nil
}

// RecordActivity refreshes a valid session or terminates an invalid one in a
// single step.
func (m *Manager) RecordActivity(ctx context.Context) (ActivityResult, error) {
	m.mu.Lock()

	s := m.load(ctx)
	if s == nil {
		m.mu.Unlock()
		return ActivityNone, nil
	}

	now := m.now()
	if s.ValidAt(now, m.config.Timeout) {
		s.touch(now, m.config.Timeout)
		err := m.save(ctx, s)
		m.mu.Unlock()
		if err != nil {
			m.logger.WarnContext(ctx, "failed to persist session refresh", logger.Subject(s.Subject), logger.Error(err))
		}
		return ActivityRefreshed, err
	}

	err := m.purge(ctx)
	m.mu.Unlock()

	m.logger.InfoContext(ctx, "session expired on activity",
		logger.Subject(s.Subject),
		logger.Duration(s.IdleFor(now)),
	)
	m.runHooks(ctx)
	return ActivityExpired, err
}

// Terminate removes the session, the current-user marker and the persisted
// cart, then runs termination hooks. It is safe to call repeatedly.
func (m *Manager) Terminate(ctx context.Context) error {
	m.mu.Lock()
	err := m.purge(ctx)
	m.mu.Unlock()

	m.logger.DebugContext(ctx, "session terminated")
	m.runHooks(ctx)
	return err
}

// Restore reconciles stored state on page load and returns the logged-in
// subject, if any. An invalid session is reaped and a current-user marker
// without a valid session is cleared.
func (m *Manager) Restore(ctx context.Context) (string, bool) {
	m.mu.Lock()

	now := m.now()
	s := m.load(ctx)
	marker, hasMarker, err := m.store.Get(ctx, storage.KeyCurrentUser)
	if err != nil {
		m.logger.WarnContext(ctx, "current user marker unreadable", logger.Error(err))
		hasMarker = false
	}

	switch {
	case s.ValidAt(now, m.config.Timeout):
		if !hasMarker || marker != s.Subject {
			if err := m.store.Set(ctx, storage.KeyCurrentUser, s.Subject); err != nil {
				m.logger.WarnContext(ctx, "failed to repair current user marker", logger.Error(err))
			}
		}
		m.mu.Unlock()
		return s.Subject, true

	case s != nil:
		_ = m.purge(ctx)
		m.mu.Unlock()
		m.logger.InfoContext(ctx, "expired session reaped on load", logger.Subject(s.Subject))
		m.runHooks(ctx)
		return "", false

	case hasMarker:
		if err := m.store.Remove(ctx, storage.KeyCurrentUser); err != nil {
			m.logger.WarnContext(ctx, "failed to clear stale current user marker", logger.Error(err))
		}
		m.mu.Unlock()
		m.logger.InfoContext(ctx, "stale current user marker cleared", logger.Subject(marker))
		return "", false
	}

	m.mu.Unlock()
	return "", false
}

func (m *Manager) runHooks(ctx context.Context) {
	m.hooksMu.RLock()
	hooks := make([]TerminateHook, len(m.hooks))
	copy(hooks, m.hooks)
	m.hooksMu.RUnlock()

	for _, hook := range hooks {
		hook(ctx)
	}
}
