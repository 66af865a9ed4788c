package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
)

// config holds ambient settings read from the environment.
type config struct {
	LogLevel string `env:"COLABCHECK_LOG_LEVEL" envDefault:"warn"`
}

// setupLogging points slog at stderr so the report on stdout stays
// clean. --verbose overrides the configured level with debug.
func setupLogging(verbose bool) error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("COLABCHECK_LOG_LEVEL: %w", err)
	}
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}
