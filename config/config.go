// Package config loads the efc tool configuration from a YAML file, with
// environment variable overrides and sane defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Plan struct {
		LumpSum  float64 `yaml:"lump_sum"`
		Monthly  float64 `yaml:"monthly"`
		Years    int     `yaml:"years"`
		Reinvest *bool   `yaml:"reinvest"`
	} `yaml:"plan"`
	Display struct {
		Currency string `yaml:"currency"`
	} `yaml:"display"`
	Fetch struct {
		Proxy string `yaml:"proxy"`
		Cache *bool  `yaml:"cache"`
	} `yaml:"fetch"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"` // empty disables run recording
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("EFC_MONTHLY"); v != "" {
		if monthly, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Plan.Monthly = monthly
		}
	}
	if v := os.Getenv("EFC_YEARS"); v != "" {
		if years, err := strconv.Atoi(v); err == nil {
			cfg.Plan.Years = years
		}
	}
	if v := os.Getenv("EFC_CURRENCY"); v != "" {
		cfg.Display.Currency = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Fetch.Proxy = v
	}
	if v := os.Getenv("EFC_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults mirror the defaults of the interactive original.
	if cfg.Plan.Monthly == 0 && cfg.Plan.LumpSum == 0 {
		cfg.Plan.Monthly = 10000
	}
	if cfg.Plan.Years == 0 {
		cfg.Plan.Years = 10
	}
	if cfg.Plan.Reinvest == nil {
		cfg.Plan.Reinvest = ptr(true)
	}
	if cfg.Display.Currency == "" {
		cfg.Display.Currency = "TWD"
	}
	if cfg.Fetch.Cache == nil {
		cfg.Fetch.Cache = ptr(true)
	}

	return cfg, nil
}

func ptr[T any](v T) *T { return &v }

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.Plan.LumpSum < 0 {
		return fmt.Errorf("plan.lump_sum cannot be negative")
	}
	if c.Plan.Monthly < 0 {
		return fmt.Errorf("plan.monthly cannot be negative")
	}
	if c.Plan.Years < 1 || c.Plan.Years > 40 {
		return fmt.Errorf("plan.years must be between 1 and 40")
	}
	return nil
}
