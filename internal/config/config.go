// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for levdiff.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/levdiff/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete levdiff configuration.
type Config struct {
	// Version of the config schema
	Version string `toml:"version" json:"version"`

	// Granularity is the default comparison unit: "char" or "line"
	Granularity string `toml:"granularity" json:"granularity"`

	// Color controls colored output: "auto", "always", "never"
	Color string `toml:"color" json:"color"`

	// MaxInputKB caps the size of each input file in kilobytes.
	// 0 disables the cap (the engine's own matrix guard still applies).
	MaxInputKB int `toml:"max_input_kb" json:"max_input_kb"`

	// ShowMatches includes unchanged symbols in the report output
	ShowMatches bool `toml:"show_matches" json:"show_matches"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// UIConfig contains interactive viewer configuration.
type UIConfig struct {
	// TUI opens the interactive viewer by default instead of printing
	TUI bool `toml:"tui" json:"tui"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values. Character
// granularity matches the original behavior of reporting per-character
// changes.
func Default() *Config {
	return &Config{
		Version:     "1.0.0",
		Granularity: "char",
		Color:       "auto",
		MaxInputKB:  1024,
		ShowMatches: false,
		UI: UIConfig{
			TUI: false,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the levdiff configuration directory.
func ConfigDir() (string, error) {
	if dir := os.Getenv("LEVDIFF_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".levdiff"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last, then validation.
func Load() (*Config, error) {
	cfg := Default()

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if _, err := toml.DecodeFile(tomlPath, cfg); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finishLoad(cfg)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			data, err := os.ReadFile(jsonPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read JSON config: %w", err)
			}
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finishLoad(cfg)
		}
	}

	return finishLoad(cfg)
}

func finishLoad(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies LEVDIFF_* environment variables on top of
// whatever the config file provided.
func (c *Config) ApplyEnvOverrides() {
	if g := os.Getenv("LEVDIFF_GRANULARITY"); g != "" {
		c.Granularity = g
	}
	if color := os.Getenv("LEVDIFF_COLOR"); color != "" {
		c.Color = color
	}
	if kb := os.Getenv("LEVDIFF_MAX_INPUT_KB"); kb != "" {
		if n, err := strconv.Atoi(kb); err == nil && n >= 0 {
			c.MaxInputKB = n
		}
	}
}

// SetDefaults fills empty fields with default values.
func (c *Config) SetDefaults() {
	def := Default()
	if c.Version == "" {
		c.Version = def.Version
	}
	if c.Granularity == "" {
		c.Granularity = def.Granularity
	}
	if c.Color == "" {
		c.Color = def.Color
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid config field.
type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s = %v: %s", e.Field, e.Value, e.Reason)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Granularity) {
	case "char", "chars", "character", "line", "lines":
	default:
		return ValidationError{Field: "granularity", Value: c.Granularity, Reason: `must be "char" or "line"`}
	}

	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return ValidationError{Field: "color", Value: c.Color, Reason: `must be "auto", "always", or "never"`}
	}

	if c.MaxInputKB < 0 {
		return ValidationError{Field: "max_input_kb", Value: c.MaxInputKB, Reason: "must be >= 0"}
	}

	return nil
}

// MaxInputBytes returns the configured per-file size cap in bytes.
// Returns 0 when the cap is disabled.
func (c *Config) MaxInputBytes() int64 {
	return int64(c.MaxInputKB) * 1024
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to the TOML config file.
// RELIABILITY: Atomic write prevents a half-written config on crash.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file at path.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# levdiff configuration file\n")
	sb.WriteString("# Generated by levdiff - edit with care\n\n")

	encoder := toml.NewEncoder(&sb)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// GET/SET HELPERS
// =============================================================================

// Get retrieves a configuration value by key.
func (c *Config) Get(key string) (interface{}, error) {
	switch strings.ToLower(key) {
	case "granularity":
		return c.Granularity, nil
	case "color":
		return c.Color, nil
	case "max_input_kb":
		return c.MaxInputKB, nil
	case "show_matches":
		return c.ShowMatches, nil
	case "ui.tui":
		return c.UI.TUI, nil
	default:
		return nil, fmt.Errorf("unknown config key %q", key)
	}
}

// Set updates a configuration value by key and validates the result.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "granularity":
		c.Granularity = value
	case "color":
		c.Color = value
	case "max_input_kb":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_input_kb: %w", err)
		}
		c.MaxInputKB = n
	case "show_matches":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("show_matches: %w", err)
		}
		c.ShowMatches = b
	case "ui.tui":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("ui.tui: %w", err)
		}
		c.UI.TUI = b
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return c.Validate()
}

// Keys returns all settable configuration keys.
func Keys() []string {
	return []string{"granularity", "color", "max_input_kb", "show_matches", "ui.tui"}
}
