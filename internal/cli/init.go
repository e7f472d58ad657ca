// Package cli provides common CLI initialization utilities for cmd/pdv.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"pdv/internal/config"
	applog "pdv/internal/log"
	"pdv/internal/storage"
)

// SetupLogger initializes structured logging and sets the default logger.
func SetupLogger() *slog.Logger {
	return applog.Setup()
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

// InitLedger initializes the SQLite ledger at the given path.
// Returns the ledger or exits the process on failure.
func InitLedger(logger *slog.Logger, dbPath string) *storage.SQLiteLedger {
	l, err := storage.NewSQLiteLedger(dbPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite ledger", "error", err, "path", dbPath)
		os.Exit(1)
	}
	return l
}
