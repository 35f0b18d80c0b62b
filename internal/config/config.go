// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profile    string `json:"profile,omitempty"`     // Path to applicant profile JSON
	ConfigFile string `json:"config_file,omitempty"` // Path to scoring configuration JSON

	// Content store
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	ConfigKey   string `json:"config_key,omitempty"`   // Scoring configuration key in the store
	OrgID       string `json:"org_id,omitempty"`       // Organization context for grading enrichment

	// Behavior
	Port      int    `json:"port,omitempty"`       // HTTP port for serve
	JWTSecret string `json:"jwt_secret,omitempty"` // Enables the bearer-token gate when set
	Verbose   bool   `json:"verbose,omitempty"`    // Print detailed breakdowns
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
// Required fields are enforced by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}
	if c.ConfigFile != "" {
		if _, err := os.Stat(c.ConfigFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: scoring config file not found: %s", c.ConfigFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.ConfigFile == "" {
		result.ConfigFile = defaults.ConfigFile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ConfigKey == "" {
		result.ConfigKey = defaults.ConfigKey
	}
	if result.OrgID == "" {
		result.OrgID = defaults.OrgID
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
