package activity

import "time"

// Config holds monitor timings.
type Config struct {
	// Interval between periodic validity sweeps.
	Interval time.Duration `env:"ACTIVITY_SWEEP_INTERVAL" envDefault:"30s"`
	// Grace is the delay between the expiry notice and termination.
	Grace time.Duration `env:"ACTIVITY_GRACE_PERIOD" envDefault:"2s"`
}

// DefaultConfig returns default monitor configuration.
func DefaultConfig() Config {
	return Config{
		Interval: 30 * time.Second,
		Grace:    2 * time.Second,
	}
}
