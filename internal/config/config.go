// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Catalog string `json:"catalog,omitempty"` // Path to a catalog JSON file (empty = built-in catalog)

	// Profile defaults
	CurrentRole      string   `json:"current_role,omitempty"`      // User's current role, shown in consultations
	TargetCareers    []string `json:"target_careers,omitempty"`    // Default target careers
	TargetCategories []string `json:"target_categories,omitempty"` // Default career categories to match against

	// Server
	Port            int `json:"port,omitempty"`             // HTTP listen port
	SessionTTLHours int `json:"session_ttl_hours,omitempty"` // Hours before an assessment session expires

	// Behavior
	SortBy  string `json:"sort_by,omitempty"` // Default match sort: match, salary, growth, time_to_entry
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.SessionTTLHours < 0 {
		return fmt.Errorf("config error: 'session_ttl_hours' must be non-negative")
	}

	switch c.SortBy {
	case "", "match", "salary", "growth", "time_to_entry":
	default:
		return fmt.Errorf("config error: unknown 'sort_by' value %q", c.SortBy)
	}

	// Validate file paths exist (if specified)
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.CurrentRole == "" {
		result.CurrentRole = defaults.CurrentRole
	}
	if result.SortBy == "" {
		result.SortBy = defaults.SortBy
	}

	// Slice fields: use default if empty
	if len(result.TargetCareers) == 0 {
		result.TargetCareers = defaults.TargetCareers
	}
	if len(result.TargetCategories) == 0 {
		result.TargetCategories = defaults.TargetCategories
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SessionTTLHours == 0 {
		result.SessionTTLHours = defaults.SessionTTLHours
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
