package storefront

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/storefront/pkg/activity"
	"github.com/dmitrymomot/storefront/pkg/catalog"
)

// Option configures a Page.
type Option func(*Page)

// WithNotifier sets the UI collaborator told about session expiry.
func WithNotifier(n activity.Notifier) Option {
	return func(p *Page) {
		if n != nil {
			p.notifier = n
		}
	}
}

// WithCatalog sets the menu used by AddToCart. Defaults to catalog.Default().
func WithCatalog(c *catalog.Catalog) Option {
	return func(p *Page) {
		if c != nil {
			p.catalog = c
		}
	}
}

// WithClock overrides the time source of the session manager and checkout.
func WithClock(now func() time.Time) Option {
	return func(p *Page) {
		if now != nil {
			p.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Page) {
		if l != nil {
			p.logger = l
		}
	}
}
