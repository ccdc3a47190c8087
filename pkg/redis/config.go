package redis

import "time"

type Config struct {
	// ConnectionURL in the format "redis://:password@localhost:6379/0".
	ConnectionURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	// KeyPrefix namespaces all storefront keys.
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"storefront:"`
	// RetryAttempts is the number of connection attempts.
	RetryAttempts int `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	// RetryInterval is the delay between connection attempts.
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"1s"`
	// ConnectTimeout bounds all connection attempts together.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}

// DefaultConfig returns the configuration matching the env defaults.
func DefaultConfig() Config {
	return Config{
		ConnectionURL:  "redis://localhost:6379/0",
		KeyPrefix:      "storefront:",
		RetryAttempts:  3,
		RetryInterval:  time.Second,
		ConnectTimeout: 10 * time.Second,
	}
}
