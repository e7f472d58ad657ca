package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// Database
	SQLiteDBPath string

	// Report output
	ReportDir string
	ChartDir  string

	// Trailing window of the daily revenue series
	TrendDays int
}

func Load() *Config {
	cfg := &Config{
		SQLiteDBPath: getEnv("PDV_DB_PATH", "./data/pdv.db"),
		ReportDir:    getEnv("PDV_REPORT_DIR", "./relatorios"),
		ChartDir:     getEnv("PDV_CHART_DIR", "./relatorios"),
		TrendDays:    getEnvInt("PDV_TREND_DAYS", 7),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.SQLiteDBPath == "" {
		errors = append(errors, "database path cannot be empty")
	} else {
		dir := filepath.Dir(c.SQLiteDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.ReportDir == "" {
		errors = append(errors, "report directory cannot be empty")
	}
	if c.ChartDir == "" {
		errors = append(errors, "chart directory cannot be empty")
	}

	if c.TrendDays < 1 {
		errors = append(errors, fmt.Sprintf("invalid trend days %d: must be at least 1", c.TrendDays))
	} else if c.TrendDays > 365 {
		errors = append(errors, fmt.Sprintf("invalid trend days %d: must be at most 365", c.TrendDays))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
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
