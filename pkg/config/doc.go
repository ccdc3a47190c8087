// Package config fills configuration structs from environment variables.
//
// Structs declare their variables with caarlos0/env tags. Load first reads
// optional .env files with joho/godotenv (variables already present in the
// process environment win), then parses the struct.
//
//	type SessionConfig struct {
//		Timeout time.Duration `env:"SESSION_TIMEOUT" envDefault:"30m"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg, config.WithEnvFiles(".env")); err != nil {
//		return err
//	}
//
// WithPrefix namespaces every variable, e.g. WithPrefix("STOREFRONT_") reads
// STOREFRONT_SESSION_TIMEOUT.
package config
