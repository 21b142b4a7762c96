// Package config loads CLI configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults for configuration values.
const (
	DefaultDBPath = "wager-history.db"
	DefaultStake  = 100.0
)

// Config holds all CLI configuration.
type Config struct {
	// DBPath is where conversion history is stored.
	DBPath string
	// HistoryEnabled turns on recording of conversions.
	HistoryEnabled bool
	// Stake is the reference stake used when displaying payouts.
	Stake float64
}

// Load reads configuration from environment variables (and .env file if
// present).
func Load() Config {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg := Config{
		DBPath: DefaultDBPath,
		Stake:  DefaultStake,
	}

	if v := os.Getenv("WAGER_DB_PATH"); v != "" {
		cfg.DBPath = v
	}

	if os.Getenv("WAGER_HISTORY") == "true" {
		cfg.HistoryEnabled = true
	}

	if v := os.Getenv("WAGER_STAKE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Stake = f
		}
	}

	return cfg
}

// Validate checks that configuration values are within acceptable ranges.
func Validate(cfg Config) error {
	if cfg.Stake <= 0 {
		return fmt.Errorf("WAGER_STAKE must be positive, got %f", cfg.Stake)
	}
	if cfg.HistoryEnabled && cfg.DBPath == "" {
		return fmt.Errorf("WAGER_DB_PATH must be set when history is enabled")
	}
	return nil
}
