// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultReplyDelay is how long the assistant pretends to think before replying.
const DefaultReplyDelay = 600 * time.Millisecond

// Config holds all configuration for the application.
type Config struct {
	StatePath  string
	LogLevel   string
	LogFormat  string
	ReplyDelay time.Duration
	ChartDir   string
	UserName   string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		StatePath: os.Getenv("STATE_FILE"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
		ChartDir:  os.Getenv("CHART_DIR"),
		UserName:  strings.TrimSpace(os.Getenv("USER_NAME")),
	}

	if cfg.StatePath == "" {
		cfg.StatePath = "bank-agent-state.json"
	}
	if cfg.ChartDir == "" {
		cfg.ChartDir = "."
	}

	cfg.ReplyDelay = DefaultReplyDelay
	if msStr := os.Getenv("REPLY_DELAY_MS"); msStr != "" {
		if ms, err := strconv.Atoi(msStr); err == nil && ms >= 0 {
			cfg.ReplyDelay = time.Duration(ms) * time.Millisecond
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that the configuration is usable.
func (c *Config) validate() error {
	var errs []string

	if c.LogFormat != "" && c.LogFormat != "console" && c.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT must be console or json, got %q", c.LogFormat))
	}

	if strings.ContainsRune(c.StatePath, '\x00') {
		errs = append(errs, "STATE_FILE contains an invalid path")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
