package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*loader)

type loader struct {
	files    []string
	optional bool
	prefix   string
}

// WithEnvFiles loads the given .env files before parsing. Missing files are an error.
func WithEnvFiles(files ...string) Option {
	return func(l *loader) {
		l.files = append(l.files, files...)
	}
}

// WithOptionalEnvFiles is like WithEnvFiles but silently skips unreadable files.
func WithOptionalEnvFiles(files ...string) Option {
	return func(l *loader) {
		l.files = append(l.files, files...)
		l.optional = true
	}
}

// WithPrefix prepends prefix to every variable name.
func WithPrefix(prefix string) Option {
	return func(l *loader) {
		l.prefix = prefix
	}
}

// Load reads .env files (if any) and parses environment variables into v.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	for _, f := range l.files {
		if err := godotenv.Load(f); err != nil && !l.optional {
			return errors.Join(ErrEnvFile, fmt.Errorf("%s: %w", f, err))
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: l.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
