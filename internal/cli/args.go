// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Unified argument parsing for all levdiff commands.
package cli

import (
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser provides unified argument parsing for CLI commands.
// It handles multiple flag formats consistently:
//   - Long flags: --flag or --flag=value
//   - Short flags: -f
//   - Positional arguments: arguments without a leading dash
//
// Every levdiff flag is boolean, so "--flag value" never consumes the
// following argument; file paths after flags stay positional.
type ArgParser struct {
	flags      map[string]string // Flags given as --key=value
	boolFlags  map[string]bool   // Boolean flags (--json)
	positional []string          // Positional arguments in order
	raw        []string          // Original raw arguments
}

// NewArgParser creates a new argument parser from raw arguments.
//
// Example:
//
//	parser := NewArgParser([]string{"a.txt", "b.txt", "--lines", "--json"})
//	parser.Positional()      // ["a.txt", "b.txt"]
//	parser.BoolFlag("lines") // true
func NewArgParser(raw []string) *ArgParser {
	parser := &ArgParser{
		flags:      make(map[string]string),
		boolFlags:  make(map[string]bool),
		positional: make([]string, 0, len(raw)),
		raw:        raw,
	}

	for _, arg := range raw {
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			parser.positional = append(parser.positional, arg)
			continue
		}

		// Handle --flag=value format
		if strings.Contains(arg, "=") {
			parts := strings.SplitN(arg, "=", 2)
			name := strings.TrimLeft(parts[0], "-")
			value := parts[1]

			// Boolean flags can be explicit: --json=true, --json=false
			if value == "true" || value == "false" {
				parser.boolFlags[name] = value == "true"
			} else {
				parser.flags[name] = value
			}
			continue
		}

		parser.boolFlags[strings.TrimLeft(arg, "-")] = true
	}

	return parser
}

// Positional returns the positional arguments in order.
func (p *ArgParser) Positional() []string {
	return p.positional
}

// Flag returns the value of a --key=value flag, or "" if absent.
func (p *ArgParser) Flag(name string) string {
	return p.flags[name]
}

// BoolFlag returns whether a boolean flag was set.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[name]
}

// Raw returns the original argument vector.
func (p *ArgParser) Raw() []string {
	return p.raw
}
