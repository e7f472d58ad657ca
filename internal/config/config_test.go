package config

import (
	"os"
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
			name: "valid config",
			config: Config{
				SQLiteDBPath: "./test.db",
				ReportDir:    "./relatorios",
				ChartDir:     "./relatorios",
				TrendDays:    7,
			},
			wantErr: false,
		},
		{
			name: "missing database path",
			config: Config{
				SQLiteDBPath: "",
				ReportDir:    "./relatorios",
				ChartDir:     "./relatorios",
				TrendDays:    7,
			},
			wantErr:     true,
			errorString: "database path cannot be empty",
		},
		{
			name: "missing report directory",
			config: Config{
				SQLiteDBPath: "./test.db",
				ReportDir:    "",
				ChartDir:     "./relatorios",
				TrendDays:    7,
			},
			wantErr:     true,
			errorString: "report directory cannot be empty",
		},
		{
			name: "trend days too small",
			config: Config{
				SQLiteDBPath: "./test.db",
				ReportDir:    "./relatorios",
				ChartDir:     "./relatorios",
				TrendDays:    0,
			},
			wantErr:     true,
			errorString: "invalid trend days 0: must be at least 1",
		},
		{
			name: "trend days too large",
			config: Config{
				SQLiteDBPath: "./test.db",
				ReportDir:    "./relatorios",
				ChartDir:     "./relatorios",
				TrendDays:    400,
			},
			wantErr:     true,
			errorString: "invalid trend days 400: must be at most 365",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	keys := []string{"PDV_DB_PATH", "PDV_REPORT_DIR", "PDV_CHART_DIR", "PDV_TREND_DAYS"}
	original := map[string]string{}
	for _, key := range keys {
		original[key] = os.Getenv(key)
		os.Unsetenv(key)
	}
	defer func() {
		for key, value := range original {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.SQLiteDBPath != "./data/pdv.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want ./data/pdv.db", cfg.SQLiteDBPath)
		}
		if cfg.ReportDir != "./relatorios" {
			t.Errorf("Load() ReportDir = %v, want ./relatorios", cfg.ReportDir)
		}
		if cfg.TrendDays != 7 {
			t.Errorf("Load() TrendDays = %v, want 7", cfg.TrendDays)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		os.Setenv("PDV_DB_PATH", "/tmp/test.db")
		os.Setenv("PDV_TREND_DAYS", "14")

		cfg := Load()

		if cfg.SQLiteDBPath != "/tmp/test.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want /tmp/test.db", cfg.SQLiteDBPath)
		}
		if cfg.TrendDays != 14 {
			t.Errorf("Load() TrendDays = %v, want 14", cfg.TrendDays)
		}
	})

	t.Run("invalid environment variables use defaults", func(t *testing.T) {
		os.Setenv("PDV_TREND_DAYS", "invalid")

		cfg := Load()

		if cfg.TrendDays != 7 {
			t.Errorf("Load() TrendDays = %v, want 7 (default for invalid input)", cfg.TrendDays)
		}
	})
}
