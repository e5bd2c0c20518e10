package main

import (
	"github.com/dmitrymomot/checktree/pkg/config"
	"github.com/dmitrymomot/checktree/pkg/logger"
	"github.com/dmitrymomot/checktree/pkg/validator"
)

const envPrefix = "RECORDCHECK_"

// Config holds the process settings. Every field is read from the environment
// with the RECORDCHECK_ prefix.
type Config struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	Format    string `env:"FORMAT" envDefault:"auto"`
}

func (c *Config) Identifier() string {
	return "config"
}

func (c *Config) Validate() error {
	v := validator.New()
	v.Add(validator.NotBlank("ENV", c.Env))
	v.If(c.LogLevel != "").Add(validator.Satisfies("LOG_LEVEL", c.LogLevel, func(s string) bool {
		_, err := logger.ParseLevel(s)
		return err == nil
	}, "must be one of debug, info, warn, error"))
	v.If(c.LogFormat != "").Add(validator.OneOf("LOG_FORMAT", logger.Format(c.LogFormat), logger.FormatText, logger.FormatJSON))
	v.Add(validator.OneOfFold("FORMAT", c.Format, FormatAuto, FormatYAML, FormatCSV))
	return v.Validate()
}

// loadConfig reads and validates the configuration, loading envFiles first.
func loadConfig(envFiles ...string) (Config, error) {
	var cfg Config
	opts := []config.Option{config.WithPrefix(envPrefix)}
	if len(envFiles) > 0 {
		opts = append(opts, config.WithEnvFiles(envFiles...))
	}
	if err := config.Load(&cfg, opts...); err != nil {
		return cfg, err
	}
	if err := validator.Apply(validator.Valid("config", &cfg)); err != nil {
		return cfg, err
	}
	return cfg, nil
}
