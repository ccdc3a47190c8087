package activity

import (
	"log/slog"
	"time"
)

// Option configures a Monitor.
type Option func(*Monitor)

func WithConfig(cfg Config) Option {
	return func(m *Monitor) {
		m.config = cfg
	}
}

// WithInterval sets the sweep interval.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		m.config.Interval = d
	}
}

// WithGracePeriod sets the delay between the expiry notice and termination.
func WithGracePeriod(d time.Duration) Option {
	return func(m *Monitor) {
		m.config.Grace = d
	}
}

func WithNotifier(n Notifier) Option {
	return func(m *Monitor) {
		if n != nil {
			m.notifier = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Monitor) {
		if l != nil {
			m.logger = l
		}
	}
}
