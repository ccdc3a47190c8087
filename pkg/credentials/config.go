package credentials

// Config holds credential store configuration.
type Config struct {
	// BcryptCost is the work factor used by the default hasher.
	BcryptCost int `env:"CREDENTIALS_BCRYPT_COST" envDefault:"10"`
	// Plaintext disables hashing (degraded mode).
	Plaintext bool `env:"CREDENTIALS_PLAINTEXT" envDefault:"false"`
}

// DefaultConfig returns default credential store configuration.
func DefaultConfig() Config {
	return Config{BcryptCost: DefaultCost}
}

// Options converts the configuration into registry options.
func (c Config) Options() []Option {
	if c.Plaintext {
		return []Option{WithHasher(nil)}
	}
	return []Option{WithHasher(BcryptHasher{Cost: c.BcryptCost})}
}
