// Command recordcheck validates contact records stored in YAML or CSV files
// and prints every problem found.
//
// Usage:
//
//	recordcheck [--format auto|yaml|csv] [--env-file FILE] FILE...
//
// It exits with status 1 when any record is invalid.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/checktree/pkg/logger"
)

var version = "dev"

// errInvalidRecords is returned when at least one record failed validation.
var errInvalidRecords = errors.New("invalid records found")

func main() {
	cmd := newCommand(os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errInvalidRecords) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "recordcheck",
		Usage:     "Validate contact records in YAML or CSV files",
		Version:   version,
		ArgsUsage: "<file> [file...]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Input format: auto, yaml or csv (overrides RECORDCHECK_FORMAT)",
			},
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Load settings from .env file (repeatable)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return checkAction(ctx, cmd, stdout, stderr)
		},
	}
}

func checkAction(ctx context.Context, cmd *cli.Command, stdout, stderr io.Writer) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: recordcheck [--format FORMAT] <file> [file...]")
	}

	cfg, err := loadConfig(cmd.StringSlice("env-file")...)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	format := cfg.Format
	if f := cmd.String("format"); f != "" {
		format = f
	}

	failed := false
	for _, path := range cmd.Args().Slice() {
		log.DebugContext(ctx, "checking file", logger.File(path))
		r, err := checkFile(ctx, log, path, format)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		r.write(stdout)
		if len(r.Problems) > 0 {
			failed = true
		}
	}

	if failed {
		return errInvalidRecords
	}
	return nil
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "recordcheck"),
		logger.WithOutput(w),
		logger.WithContextValue("file", fileKey{}),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...), nil
}
