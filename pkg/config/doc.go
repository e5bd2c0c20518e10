// Package config loads application configuration from the environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional `.env` files are read into the process environment first, then
// the environment is parsed into any struct annotated with `env` tags.
//
// # Usage
//
//	type Config struct {
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg,
//	    config.WithEnvFiles("./config/recordcheck.env"),
//	    config.WithPrefix("RECORDCHECK_"),
//	); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Without WithEnvFiles, Load reads `.env` from the working directory when it
// exists and silently skips it otherwise.
//
// # Error Handling
//
// Failures can be matched with errors.Is:
//
//   - ErrParsingConfig  – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile – a requested .env file could not be read.
//   - ErrNilPointer     – nil pointer passed to Load/MustLoad.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
