package storefront

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/storefront/pkg/activity"
	"github.com/dmitrymomot/storefront/pkg/cart"
	"github.com/dmitrymomot/storefront/pkg/catalog"
	"github.com/dmitrymomot/storefront/pkg/checkout"
	"github.com/dmitrymomot/storefront/pkg/credentials"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/sanitizer"
	"github.com/dmitrymomot/storefront/pkg/session"
	"github.com/dmitrymomot/storefront/pkg/storage"
)

// Page owns one instance of every manager for the lifetime of a page.
type Page struct {
	config   Config
	store    storage.Store
	catalog  *catalog.Catalog
	notifier activity.Notifier
	logger   *slog.Logger
	now      func() time.Time

	sessions *session.Manager
	accounts *credentials.Registry
	cart     *cart.Manager
	monitor  *activity.Monitor
	checkout *checkout.Gate

	// lifetime bounds the monitor sweep; it ends on Close.
	lifetime context.Context
	cancel   context.CancelFunc
	once     sync.Once
}

// AuthState is what the auth indicator shows.
type AuthState struct {
	LoggedIn    bool
	Email       string
	DisplayName string
	// Greeting is "Hi, <name>" when logged in.
	Greeting string
}

// New builds a page over store. A nil store falls back to an in-memory one.
func New(cfg Config, store storage.Store, opts ...Option) (*Page, error) {
	p := &Page{
		config:   cfg,
		store:    store,
		notifier: activity.NopNotifier{},
		logger:   logger.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.store == nil {
		p.store = storage.NewMemoryStore()
	}
	if p.catalog == nil {
		p.catalog = catalog.Default()
	}

	p.sessions = session.NewFromConfig(cfg.Session,
		session.WithStore(p.store),
		session.WithClock(p.now),
		session.WithLogger(p.logger),
	)
	p.accounts = credentials.New(p.store,
		append(cfg.Credentials.Options(), credentials.WithLogger(p.logger))...,
	)
	p.cart = cart.New(p.store, cart.WithLogger(p.logger))

	var err error
	p.monitor, err = activity.New(p.sessions,
		activity.WithConfig(cfg.Activity),
		activity.WithNotifier(p.notifier),
		activity.WithLogger(p.logger),
	)
	if err != nil {
		return nil, err
	}
	p.checkout, err = checkout.New(p.sessions, p.cart,
		checkout.WithConfig(cfg.Checkout),
		checkout.WithClock(p.now),
		checkout.WithLogger(p.logger),
	)
	if err != nil {
		return nil, err
	}

	// Any termination (logout, sweep expiry, reap on load) leaves the page
	// logged out with an empty cart.
	p.sessions.OnTerminate(func(context.Context) {
		p.monitor.Stop()
		p.cart.Reset()
	})

	p.lifetime, p.cancel = context.WithCancel(context.Background())
	p.logger = p.logger.With(logger.Component("page"))

	if p.accounts.Degraded() {
		p.logger.Warn("credential store running without a hasher", logger.Error(credentials.ErrDegradedSecurityMode))
	}
	return p, nil
}

// Load runs the page-load sequence: restore the session, start or stop the
// activity monitor, then hydrate the cart.
func (p *Page) Load(ctx context.Context) AuthState {
	if _, ok := p.sessions.Restore(ctx); ok && p.lifetime.Err() == nil {
		p.monitor.Start(p.lifetime)
	} else {
		p.monitor.Stop()
	}
	p.cart.Hydrate(ctx)
	return p.AuthState(ctx)
}

// AuthState reports the current user for the auth indicator. The display
// name is the registered name, or the e-mail local part when none is stored.
func (p *Page) AuthState(ctx context.Context) AuthState {
	subject, ok := p.sessions.CurrentSubject(ctx)
	if !ok {
		return AuthState{}
	}

	name := sanitizer.LocalPart(subject)
	if acc, found := p.accounts.Lookup(ctx, subject); found && acc.DisplayName != "" {
		name = acc.DisplayName
	}
	return AuthState{
		LoggedIn:    true,
		Email:       subject,
		DisplayName: name,
		Greeting:    "Hi, " + name,
	}
}

// HandleEvent forwards a user interaction to the activity monitor. Unknown
// event names are ignored.
func (p *Page) HandleEvent(ctx context.Context, event string) (session.ActivityResult, error) {
	kind, ok := activity.ParseEventKind(event)
	if !ok {
		return session.ActivityNone, nil
	}
	return p.monitor.HandleEvent(ctx, kind)
}

// Cart exposes the cart manager for quantity edits and listing.
func (p *Page) Cart() *cart.Manager {
	return p.cart
}

// Catalog returns the menu.
func (p *Page) Catalog() *catalog.Catalog {
	return p.catalog
}

// Sessions exposes the session manager.
func (p *Page) Sessions() *session.Manager {
	return p.sessions
}

// Running reports whether the activity monitor is watching the session.
func (p *Page) Running() bool {
	return p.monitor.Running()
}

// Close unloads the page: it stops the monitor. Stored state is kept.
func (p *Page) Close() {
	p.once.Do(func() {
		p.monitor.Stop()
		p.cancel()
	})
}
