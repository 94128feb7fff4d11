// Package models defines the table record, feature mapping and configuration.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBinCount     = 10
	DefaultOutputFormat = "json"
)

// Config holds runtime configuration for feature extraction.
// Values come from an optional YAML file and are overridden by CLI flags.
type Config struct {
	Bins         int    `yaml:"bins"`
	OutputFormat string `yaml:"output_format"`
	DBPath       string `yaml:"db_path"`
	ColumnMeta   bool   `yaml:"column_meta"`
	SeqURL       string `yaml:"seq_url"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Bins:         DefaultBinCount,
		OutputFormat: DefaultOutputFormat,
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values a run cannot proceed without.
func (c *Config) Validate() error {
	if c.Bins < 2 {
		return fmt.Errorf("bins must be at least 2, got %d", c.Bins)
	}
	switch c.OutputFormat {
	case "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q", c.OutputFormat)
	}
	return nil
}
