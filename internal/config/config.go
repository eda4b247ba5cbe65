// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store codecs
const (
	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

// Config holds application configuration
type Config struct {
	DataDir         string // Directory holding the database (always absolute)
	DBName          string
	LogLevel        string
	LogPretty       bool
	StoreCodec      string // json or msgpack
	RefreshSchedule string // Cron spec of the periodic re-analysis
	ThresholdsFile  string // Optional YAML threshold overrides
	HistoryLimit    int    // Snapshots shown by the history command
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("LIFEDASH_DATA_DIR", "")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".lifedash")
	}

	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:         absDataDir,
		DBName:          getEnv("LIFEDASH_DB_NAME", "lifedash.db"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogPretty:       getEnvAsBool("LOG_PRETTY", true),
		StoreCodec:      strings.ToLower(getEnv("LIFEDASH_STORE_CODEC", CodecJSON)),
		RefreshSchedule: getEnv("LIFEDASH_REFRESH_SCHEDULE", "@every 6h"),
		ThresholdsFile:  getEnv("LIFEDASH_THRESHOLDS_FILE", ""),
		HistoryLimit:    getEnvAsInt("LIFEDASH_HISTORY_LIMIT", 10),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DBPath returns the absolute path of the database file
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBName)
}

// Validate checks that every setting holds a usable value
func (c *Config) Validate() error {
	if c.StoreCodec != CodecJSON && c.StoreCodec != CodecMsgpack {
		return fmt.Errorf("invalid LIFEDASH_STORE_CODEC %q: must be %s or %s", c.StoreCodec, CodecJSON, CodecMsgpack)
	}
	if strings.TrimSpace(c.DBName) == "" {
		return fmt.Errorf("LIFEDASH_DB_NAME must not be empty")
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("LIFEDASH_HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	if strings.TrimSpace(c.RefreshSchedule) == "" {
		return fmt.Errorf("LIFEDASH_REFRESH_SCHEDULE must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
