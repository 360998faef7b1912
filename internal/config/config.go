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
	Input      string `json:"input,omitempty"`      // Path to a raw model response file
	Background string `json:"background,omitempty"` // Path to the candidate background text
	Job        string `json:"job,omitempty"`        // Path to the target role description
	OutputDir  string `json:"output_dir,omitempty"` // Directory for rendered block output

	// Behavior
	Origin  string   `json:"origin,omitempty"`  // Raw response origin: "structured" or "prose"
	Formats []string `json:"formats,omitempty"` // Output formats: "page", "docx"
	Model   string   `json:"model,omitempty"`   // Override for the standard-tier model
	APIKey  string   `json:"api_key,omitempty"` // Gemini API key
	Verbose bool     `json:"verbose,omitempty"` // Print detailed debug information
}

// originLabels maps accepted origin flag values; keep in sync with
// types.Origin constants.
var originLabels = map[string]bool{
	"":           true,
	"structured": true,
	"prose":      true,
}

var formatLabels = map[string]bool{
	"page": true,
	"docx": true,
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
	if !originLabels[c.Origin] {
		return fmt.Errorf("config error: 'origin' must be \"structured\" or \"prose\", got %q", c.Origin)
	}

	for _, format := range c.Formats {
		if !formatLabels[format] {
			return fmt.Errorf("config error: unknown format %q (want \"page\" or \"docx\")", format)
		}
	}

	// Validate file paths exist (if specified)
	for _, path := range []string{c.Input, c.Background, c.Job} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Background == "" {
		result.Background = defaults.Background
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Origin == "" {
		result.Origin = defaults.Origin
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if len(result.Formats) == 0 {
		result.Formats = defaults.Formats
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
