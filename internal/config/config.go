package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Storage
	CSVPath     string
	DataBackend string

	// Presentation
	ChartWidth int

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		CSVPath:     getEnv("EXPENSES_CSV_PATH", "expenses.csv"),
		DataBackend: getEnv("EXPENSES_BACKEND", "csv"),
		ChartWidth:  getEnvInt("CHART_WIDTH", 40),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data backend
	validBackends := []string{"csv", "memory"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	// Validate CSV path if backend is csv
	if c.DataBackend == "csv" && strings.TrimSpace(c.CSVPath) == "" {
		errors = append(errors, "CSV file path cannot be empty when using csv backend")
	}

	// Validate chart width
	if c.ChartWidth < 10 {
		errors = append(errors, fmt.Sprintf("invalid chart width %d: must be at least 10", c.ChartWidth))
	} else if c.ChartWidth > 200 {
		errors = append(errors, fmt.Sprintf("invalid chart width %d: must be at most 200", c.ChartWidth))
	}

	// Validate log level
	if _, err := c.SlogLevel(); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// SlogLevel maps the configured log level string to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", c.LogLevel)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
