package activity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/session"
)

// Sessions is the part of the session manager the monitor drives.
type Sessions interface {
	IsValid(ctx context.Context) bool
	RecordActivity(ctx context.Context) (session.ActivityResult, error)
	Terminate(ctx context.Context) error
}

// Monitor watches user activity and session expiry.
type Monitor struct {
	sessions Sessions
	notifier Notifier
	config   Config
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// New creates a stopped monitor.
func New(sessions Sessions, opts ...Option) (*Monitor, error) {
	if sessions == nil {
		return nil, ErrNoSessions
	}

	m := &Monitor{
		sessions: sessions,
		notifier: NopNotifier{},
		config:   DefaultConfig(),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}

	def := DefaultConfig()
	if m.config.Interval <= 0 {
		m.config.Interval = def.Interval
	}
	if m.config.Grace < 0 {
		m.config.Grace = def.Grace
	}
	m.logger = m.logger.With(logger.Component("activity"))

	return m, nil
}

// Start cancels any running sweep and schedules a new one. The sweep ends
// when ctx is done or Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
	}
	m.gen++
	gen := m.gen
	sweepCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.mu.Unlock()

	go m.loop(sweepCtx, gen)

	m.logger.DebugContext(ctx, "activity monitor started", logger.Duration(m.config.Interval))
}

// Stop cancels the sweep and detaches event handling. It does not wait for
// the sweep goroutine to exit.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

// Running reports whether the monitor is started.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel != nil
}

func (m *Monitor) stopLocked() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	m.cancel = nil
	m.gen++
}

// stopIf stops the monitor only if gen is still the current run.
func (m *Monitor) stopIf(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen == gen {
		m.stopLocked()
	}
}

// HandleEvent processes one user interaction. It is a no-op for unknown kinds
// and while the monitor is stopped.
func (m *Monitor) HandleEvent(ctx context.Context, kind EventKind) (session.ActivityResult, error) {
	if !kind.Valid() {
		return session.ActivityNone, nil
	}

	m.mu.Lock()
	running := m.cancel != nil
	gen := m.gen
	m.mu.Unlock()
	if !running {
		return session.ActivityNone, nil
	}

	res, err := m.sessions.RecordActivity(ctx)
	if err != nil {
		m.logger.WarnContext(ctx, "activity not recorded", logger.Event(string(kind)), logger.Error(err))
	}

	if res == session.ActivityExpired {
		m.stopIf(gen)
		m.logger.InfoContext(ctx, "session expired, logging out", logger.Event(string(kind)))
		m.notifier.DismissNotice(ctx)
		m.notifier.RedirectToLogin(ctx)
	}
	return res, err
}

func (m *Monitor) loop(ctx context.Context, gen uint64) {
	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if m.sweep(ctx, gen) {
				return
			}
		}
	}
}

// sweep reports true once it has terminated the session.
func (m *Monitor) sweep(ctx context.Context, gen uint64) bool {
	if ctx.Err() != nil {
		return true
	}
	if m.sessions.IsValid(ctx) {
		return false
	}

	m.logger.InfoContext(ctx, "session expired, showing notice", logger.Duration(m.config.Grace))
	m.notifier.NotifyExpired(ctx)

	if m.config.Grace > 0 {
		timer := time.NewTimer(m.config.Grace)
		select {
		case <-ctx.Done():
			timer.Stop()
			return true
		case <-timer.C:
		}
	}
	if ctx.Err() != nil {
		return true
	}

	// Termination hooks may stop this monitor and cancel ctx.
	detached := context.WithoutCancel(ctx)
	if err := m.sessions.Terminate(detached); err != nil {
		m.logger.ErrorContext(detached, "failed to terminate expired session", logger.Error(err))
	}
	m.stopIf(gen)

	m.notifier.DismissNotice(detached)
	m.notifier.RedirectToLogin(detached)
	return true
}
