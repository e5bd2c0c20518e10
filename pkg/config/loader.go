package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when present and no files were requested.
const DefaultEnvFile = ".env"

// Option configures Load.
type Option func(*options)

type options struct {
	files  []string
	prefix string
}

// WithEnvFiles loads the given .env files before parsing. Unlike the default
// file, every listed file must exist. Variables already set in the process
// environment win over file values; earlier files win over later ones.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = append(o.files, files...)
	}
}

// WithPrefix prepends prefix to every env tag, e.g. "RECORDCHECK_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load populates v from the environment using `env` struct tags.
//
// Example:
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		MaxAge   int    `env:"MAX_AGE" envDefault:"150"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("RECORDCHECK_")); err != nil {
//		// handle
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if err := loadEnvFiles(o.files); err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
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

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			// The default file is optional.
			return nil
		}
		files = []string{DefaultEnvFile}
	}

	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
