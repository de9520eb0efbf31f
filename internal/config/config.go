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
	// Inputs
	JDFile  string `json:"jd_file,omitempty"` // Path to job description text file
	JDURL   string `json:"jd_url,omitempty"`  // URL to fetch the job description from
	Company string `json:"company,omitempty"` // Company name
	Role    string `json:"role,omitempty"`    // Role title

	// Storage
	StorePath   string `json:"store_path,omitempty"`   // Path to the JSON history file
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (overrides StorePath)

	// Table overrides
	KeywordTable string `json:"keyword_table,omitempty"` // Path to external keyword table JSON
	CompanyTable string `json:"company_table,omitempty"` // Path to external company table JSON

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// DefaultStorePath is the history file used when nothing else is configured.
const DefaultStorePath = "readiness_history.json"

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
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

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required-field
// checks happen after CLI flag merging, not here.
func (c *Config) Validate() error {
	if c.JDFile != "" && c.JDURL != "" {
		return fmt.Errorf("config error: 'jd_file' and 'jd_url' are mutually exclusive")
	}

	for name, path := range map[string]string{
		"jd_file":       c.JDFile,
		"keyword_table": c.KeywordTable,
		"company_table": c.CompanyTable,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This applies config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.JDFile == "" {
		result.JDFile = defaults.JDFile
	}
	if result.JDURL == "" {
		result.JDURL = defaults.JDURL
	}
	if result.Company == "" {
		result.Company = defaults.Company
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.StorePath == "" {
		result.StorePath = defaults.StorePath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.KeywordTable == "" {
		result.KeywordTable = defaults.KeywordTable
	}
	if result.CompanyTable == "" {
		result.CompanyTable = defaults.CompanyTable
	}
	if !result.UseBrowser {
		result.UseBrowser = defaults.UseBrowser
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
