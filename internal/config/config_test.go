package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid csv backend config",
			config: Config{
				CSVPath:     "expenses.csv",
				DataBackend: "csv",
				ChartWidth:  40,
				LogLevel:    "info",
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				DataBackend: "memory",
				ChartWidth:  40,
				LogLevel:    "debug",
			},
			wantErr: false,
		},
		{
			name: "invalid data backend",
			config: Config{
				DataBackend: "sqlite",
				CSVPath:     "expenses.csv",
				ChartWidth:  40,
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "invalid data backend 'sqlite'",
		},
		{
			name: "csv backend missing path",
			config: Config{
				DataBackend: "csv",
				CSVPath:     "   ",
				ChartWidth:  40,
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "CSV file path cannot be empty",
		},
		{
			name: "chart width too small",
			config: Config{
				DataBackend: "csv",
				CSVPath:     "expenses.csv",
				ChartWidth:  2,
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "invalid chart width 2",
		},
		{
			name: "invalid log level",
			config: Config{
				DataBackend: "csv",
				CSVPath:     "expenses.csv",
				ChartWidth:  40,
				LogLevel:    "loud",
			},
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"EXPENSES_CSV_PATH", "EXPENSES_BACKEND", "CHART_WIDTH", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.CSVPath != "expenses.csv" || cfg.DataBackend != "csv" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ChartWidth != 40 || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EXPENSES_CSV_PATH", "/tmp/e.csv")
	t.Setenv("EXPENSES_BACKEND", "memory")
	t.Setenv("CHART_WIDTH", "60")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.CSVPath != "/tmp/e.csv" || cfg.DataBackend != "memory" || cfg.ChartWidth != 60 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if lvl, err := cfg.SlogLevel(); err != nil || lvl != slog.LevelDebug {
		t.Fatalf("unexpected level: %v (err=%v)", lvl, err)
	}
}
