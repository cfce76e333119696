package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	DataDir  string
	Theme    string
	LogLevel string
}

// Load reads configuration from the environment, falling back to a
// data directory under the user's config dir.
func Load() (Config, error) {
	cfg := Config{
		DataDir:  strings.TrimSpace(os.Getenv("BANK_DATA_DIR")),
		Theme:    fallback(os.Getenv("BANK_THEME"), "charm"),
		LogLevel: fallback(os.Getenv("BANK_LOG_LEVEL"), "info"),
	}
	if cfg.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(homeDir, ".config", "student-bank")
	}
	return cfg, nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
