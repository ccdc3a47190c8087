package mongo

import "time"

type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL" envDefault:"mongodb://localhost:27017"` // ConnectionURL is the URL of the database.
	Database        string        `env:"MONGODB_DATABASE" envDefault:"storefront"`           // Database holds the key-value collection.
	Collection      string        `env:"MONGODB_COLLECTION" envDefault:"kv"`                 // Collection stores one document per key.
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`           // ConnectTimeout is the timeout for connecting to the database.
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"10"`              // MaxPoolSize is the maximum number of pooled connections.
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`       // MaxConnIdleTime is how long a pooled connection may stay idle.
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`              // RetryAttempts is the number of connection attempts.
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"1s"`             // RetryInterval is the delay between connection attempts.
}

// DefaultConfig returns the configuration matching the env defaults.
func DefaultConfig() Config {
	return Config{
		ConnectionURL:   "mongodb://localhost:27017",
		Database:        "storefront",
		Collection:      "kv",
		ConnectTimeout:  10 * time.Second,
		MaxPoolSize:     10,
		MaxConnIdleTime: 300 * time.Second,
		RetryAttempts:   3,
		RetryInterval:   time.Second,
	}
}
