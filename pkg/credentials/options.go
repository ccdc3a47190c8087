package credentials

import "log/slog"

// Option configures a Registry.
type Option func(*Registry)

// WithHasher sets the hashing capability. A nil hasher enables degraded
// plaintext mode.
func WithHasher(h Hasher) Option {
	return func(r *Registry) {
		r.hasher = h
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}
