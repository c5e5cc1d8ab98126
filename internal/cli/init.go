// Package cli provides common initialization utilities for the command-line
// shell: environment loading, logging setup, configuration, and store
// construction.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"expensetrack/internal/config"
	"expensetrack/internal/store"
	"expensetrack/internal/store/csvfile"
	"expensetrack/internal/store/memory"
)

// SetupLogger initializes structured logging at the given level and sets it
// as the default logger.
func SetupLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStore constructs and initializes the configured store backend.
// Returns the store or exits the process on failure.
func InitStore(ctx context.Context, logger *slog.Logger, cfg *config.Config) store.Store {
	var s store.Store
	switch cfg.DataBackend {
	case "memory":
		s = memory.New()
	default:
		s = csvfile.New(cfg.CSVPath)
	}
	if err := s.Initialize(ctx); err != nil {
		logger.Error("Failed to initialize expense store", "error", err, "backend", cfg.DataBackend, "path", cfg.CSVPath)
		os.Exit(1)
	}
	return s
}
