package session

import "time"

// Config holds session configuration.
type Config struct {
	// Timeout is the inactivity period after which a session expires.
	Timeout time.Duration `env:"SESSION_TIMEOUT" envDefault:"30m"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Minute,
	}
}

// NewFromConfig creates a new Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}
