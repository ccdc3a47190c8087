package storefront

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/storefront/pkg/activity"
	"github.com/dmitrymomot/storefront/pkg/checkout"
	"github.com/dmitrymomot/storefront/pkg/credentials"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/mongo"
	"github.com/dmitrymomot/storefront/pkg/redis"
	"github.com/dmitrymomot/storefront/pkg/session"
)

// Config aggregates the configuration of every storefront component.
type Config struct {
	Log         LogConfig
	Storage     StorageConfig
	Session     session.Config
	Activity    activity.Config
	Credentials credentials.Config
	Checkout    checkout.Config
}

// LogConfig selects the logger preset.
type LogConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"storefront"`
	// Level and Format override the environment preset when set.
	Level  string `env:"LOG_LEVEL"`
	Format string `env:"LOG_FORMAT"`
}

// StorageConfig selects and configures the persistent store.
type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"file"`
	// Origin scopes keys in shared backends, like a browser origin does.
	Origin string `env:"STORAGE_ORIGIN" envDefault:"cincocoffee.local"`
	Path   string `env:"STORAGE_PATH" envDefault:".storefront/storage.json"`
	// QuotaBytes limits the memory driver. Zero means unlimited.
	QuotaBytes int `env:"STORAGE_QUOTA_BYTES" envDefault:"5242880"`

	Redis redis.Config
	Mongo mongo.Config
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Env: "development", Service: "storefront"},
		Storage: StorageConfig{
			Driver:     DriverFile,
			Origin:     "cincocoffee.local",
			Path:       ".storefront/storage.json",
			QuotaBytes: 5 << 20,
			Redis:      redis.DefaultConfig(),
			Mongo:      mongo.DefaultConfig(),
		},
		Session:     session.DefaultConfig(),
		Activity:    activity.DefaultConfig(),
		Credentials: credentials.DefaultConfig(),
		Checkout:    checkout.DefaultConfig(),
	}
}

// NewLogger builds the application logger. A nil w writes to stderr.
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithOutput(w),
		logger.WithContextExtractors(logger.SubjectExtractor),
	}
	if cfg.Level != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.Level)))
	}
	switch f := logger.Format(strings.ToLower(cfg.Format)); f {
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	}

	return logger.New(opts...)
}
