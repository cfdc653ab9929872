// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for levdiff.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.levdiff/config.toml
//   - ~/.levdiff/config.json
//   - Built-in defaults
//
// Environment overrides: LEVDIFF_GRANULARITY, LEVDIFF_COLOR,
// LEVDIFF_MAX_INPUT_KB.
package config
