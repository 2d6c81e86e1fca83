// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultPort is the HTTP port used by serve when nothing else is set.
	DefaultPort = 8080
	// DefaultSessionTTLMinutes is how long an idle terminal session survives.
	DefaultSessionTTLMinutes = 30
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Sources
	Content     string `json:"content,omitempty"`      // Path to a .json or .hcl content file
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	Port              int   `json:"port,omitempty"`                // HTTP port for serve
	SessionTTLMinutes int   `json:"session_ttl_minutes,omitempty"` // Idle session lifetime
	RateLimit         *bool `json:"rate_limit,omitempty"`          // Per-client rate limiting; nil means on

	// Behavior
	Boot bool `json:"boot,omitempty"` // Play the boot sequence before the terminal
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:              DefaultPort,
		SessionTTLMinutes: DefaultSessionTTLMinutes,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

	return &cfg, nil
}

// FromEnv reads the environment overlay. Unset or unparsable variables leave
// the field at its zero value so the next layer can fill it.
func FromEnv() Config {
	return Config{
		Content:           getEnv("PORTFOLIO_CONTENT", ""),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		Port:              getEnvInt("PORT", 0),
		SessionTTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 0),
		Boot:              getEnvBool("PORTFOLIO_BOOT", false),
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}
	if c.SessionTTLMinutes < 0 {
		return fmt.Errorf("config error: 'session_ttl_minutes' must be non-negative")
	}

	if c.Content != "" {
		if _, err := os.Stat(c.Content); os.IsNotExist(err) {
			return fmt.Errorf("config error: content file not found: %s", c.Content)
		}
		switch strings.ToLower(filepath.Ext(c.Content)) {
		case ".json", ".hcl":
		default:
			return fmt.Errorf("config error: content file must be .json or .hcl: %s", c.Content)
		}
	}

	if c.DatabaseURL != "" && !strings.HasPrefix(c.DatabaseURL, "postgres://") && !strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		return fmt.Errorf("config error: 'database_url' must be a postgres:// URL")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer config file values over the environment and built-ins.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Content == "" {
		result.Content = defaults.Content
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SessionTTLMinutes == 0 {
		result.SessionTTLMinutes = defaults.SessionTTLMinutes
	}

	// RateLimit is a pointer so an explicit false survives the merge
	if result.RateLimit == nil && defaults.RateLimit != nil {
		v := *defaults.RateLimit
		result.RateLimit = &v
	}

	// Boot cannot distinguish unset from false, so either layer can enable it
	result.Boot = result.Boot || defaults.Boot

	return result
}

// SessionTTL returns the idle session lifetime.
func (c *Config) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return DefaultSessionTTLMinutes * time.Minute
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// RateLimitEnabled reports whether rate limiting is on. It defaults to true.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimit == nil || *c.RateLimit
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}
	return ":" + strconv.Itoa(port)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
