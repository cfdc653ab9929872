// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for levdiff.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "char", cfg.Granularity)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, 1024, cfg.MaxInputKB)
	assert.False(t, cfg.ShowMatches)
	assert.False(t, cfg.UI.TUI)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"line granularity", func(c *Config) { c.Granularity = "line" }, false},
		{"bad granularity", func(c *Config) { c.Granularity = "word" }, true},
		{"always color", func(c *Config) { c.Color = "always" }, false},
		{"bad color", func(c *Config) { c.Color = "rainbow" }, true},
		{"negative cap", func(c *Config) { c.MaxInputKB = -1 }, true},
		{"zero cap disables", func(c *Config) { c.MaxInputKB = 0 }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("LEVDIFF_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "char", cfg.Granularity)
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEVDIFF_CONFIG_DIR", dir)

	content := "granularity = \"line\"\ncolor = \"never\"\nmax_input_kb = 64\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "line", cfg.Granularity)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, 64, cfg.MaxInputKB)
}

func TestLoad_JSONFallback(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEVDIFF_CONFIG_DIR", dir)

	content := `{"granularity": "line", "color": "always"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "line", cfg.Granularity)
	assert.Equal(t, "always", cfg.Color)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LEVDIFF_CONFIG_DIR", t.TempDir())
	t.Setenv("LEVDIFF_GRANULARITY", "line")
	t.Setenv("LEVDIFF_MAX_INPUT_KB", "32")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "line", cfg.Granularity)
	assert.Equal(t, 32, cfg.MaxInputKB)
}

func TestLoad_InvalidFileValue(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEVDIFF_CONFIG_DIR", dir)

	content := "granularity = \"paragraph\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("LEVDIFF_CONFIG_DIR", t.TempDir())

	cfg := Default()
	cfg.Granularity = "line"
	cfg.ShowMatches = true
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "line", loaded.Granularity)
	assert.True(t, loaded.ShowMatches)
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("granularity", "line"))
	v, err := cfg.Get("granularity")
	require.NoError(t, err)
	assert.Equal(t, "line", v)

	require.NoError(t, cfg.Set("ui.tui", "true"))
	assert.True(t, cfg.UI.TUI)

	assert.Error(t, cfg.Set("granularity", "sentence"), "invalid value must fail validation")
	assert.Error(t, cfg.Set("nope", "x"))
	_, err = cfg.Get("nope")
	assert.Error(t, err)
}

func TestMaxInputBytes(t *testing.T) {
	cfg := Default()
	cfg.MaxInputKB = 2
	assert.Equal(t, int64(2048), cfg.MaxInputBytes())

	cfg.MaxInputKB = 0
	assert.Equal(t, int64(0), cfg.MaxInputBytes())
}
