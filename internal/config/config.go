package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the client.
// Following 12-factor app principles, all config is loaded from environment
// variables with the INVCTL prefix.
type Config struct {
	APIBaseURL     string `envconfig:"API_BASE_URL" default:"http://localhost:8080"`
	RequestTimeout int    `envconfig:"REQUEST_TIMEOUT" default:"15"`
	SessionFile    string `envconfig:"SESSION_FILE"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("invctl", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.SessionFile = filepath.Join(home, ".config", "invctl", "session.json")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("INVCTL_API_BASE_URL is required")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("INVCTL_REQUEST_TIMEOUT must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}
