// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Defaults applied when neither the environment nor a config file sets a value.
const (
	DefaultPort           = 8080
	DefaultRequestTimeout = 120 * time.Second
)

// ConfigurationError indicates a missing or invalid configuration value.
// It is fatal: the pipeline is never initialized when one is returned.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
}

// Config holds application configuration. All fields except APIKey are
// optional; missing values use defaults.
type Config struct {
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	Port           int    `json:"port,omitempty"`            // HTTP server port
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Per-completion request timeout
}

// FromEnv builds a Config from environment variables. The API key is
// required and its absence fails immediately rather than at the first
// completion call.
func FromEnv() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, &ConfigurationError{Field: "GEMINI_API_KEY", Message: "environment variable not set"}
	}

	cfg := &Config{APIKey: apiKey}

	if v := os.Getenv("WRITEDESK_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, &ConfigurationError{Field: "WRITEDESK_PORT", Message: "must be an integer"}
		}
		cfg.Port = port
	}

	if v := os.Getenv("WRITEDESK_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, &ConfigurationError{Field: "WRITEDESK_TIMEOUT_SECONDS", Message: "must be an integer"}
		}
		cfg.TimeoutSeconds = secs
	}

	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

// LoadFile loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, &ConfigurationError{Field: "config", Message: "path is empty"}
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &ConfigurationError{Field: "api_key", Message: "is required"}
	}
	if c.Port < 0 || c.Port > 65535 {
		return &ConfigurationError{Field: "port", Message: "must be between 0 and 65535"}
	}
	if c.TimeoutSeconds < 0 {
		return &ConfigurationError{Field: "timeout_seconds", Message: "must be non-negative"}
	}
	return nil
}

// Timeout returns the per-completion timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	return result
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = int(DefaultRequestTimeout / time.Second)
	}
}
