// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command parsing and routing for levdiff.
package cli

import (
	"fmt"
	"os"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdDiff Command = iota
	CmdDistance
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Granularity string // "" (config default), "char", or "line"
	JSON        bool   // Output in JSON format
	Quiet       bool   // Suppress the report; exit status only
	All         bool   // Include unchanged symbols in the report
	TUI         bool   // Open the interactive viewer
	Watch       bool   // Re-run the comparison when an input changes
	NoColor     bool   // Disable colored output

	// Command-specific
	Subcommand string   // e.g. config "show" / "set" / "path"
	Files      []string // Input file paths

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `levdiff - Levenshtein-based file comparison

Levdiff computes the minimum set of character or line edits (insertions,
deletions, substitutions) transforming one text file into another, and
shows each edit with its position.

Usage:
  levdiff <fileA> <fileB>           Compare two files (default command)
  levdiff diff <fileA> <fileB>      Same, explicit
  levdiff distance <fileA> <fileB>  Print only the edit distance
  levdiff config [show|set|path]    Configuration
  levdiff version                   Show version
  levdiff help                      Show this help

Flags:
  --chars          Compare character by character (default)
  --lines          Compare line by line
  --all            Also list unchanged symbols
  --json           Machine-readable output (edit script + stats)
  --quiet, -q      No output; exit 0 if identical, 1 if different
  --tui            Interactive scrollable viewer
  --watch, -w      Re-run the comparison whenever an input file changes
  --no-color       Disable colored output

Config:
  levdiff config show               Show current configuration
  levdiff config set <key> <value>  Change a setting
  levdiff config path               Print the config file location

Exit codes:
  0  inputs identical (or informational command succeeded)
  1  inputs differ
  2+ an error occurred

Environment:
  NO_COLOR, FORCE_COLOR             Color handling (https://no-color.org)
  LEVDIFF_GRANULARITY               Override the default granularity
  LEVDIFF_COLOR                     Override the color mode
  LEVDIFF_MAX_INPUT_KB              Override the input size cap
`

// Parse parses os.Args and returns the command to run with its arguments.
func Parse() (Command, *Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses an argument vector. Split out from Parse for tests.
func ParseArgs(argv []string) (Command, *Args) {
	parser := NewArgParser(argv)

	args := &Args{
		JSON:    parser.BoolFlag("json"),
		Quiet:   parser.BoolFlag("quiet") || parser.BoolFlag("q"),
		All:     parser.BoolFlag("all"),
		TUI:     parser.BoolFlag("tui"),
		Watch:   parser.BoolFlag("watch") || parser.BoolFlag("w"),
		NoColor: parser.BoolFlag("no-color"),
		Raw:     argv,
	}

	switch {
	case parser.BoolFlag("lines"):
		args.Granularity = "line"
	case parser.BoolFlag("chars"):
		args.Granularity = "char"
	}

	positional := parser.Positional()
	if len(positional) == 0 {
		if parser.BoolFlag("version") || parser.BoolFlag("v") {
			return CmdVersion, args
		}
		if parser.BoolFlag("help") || parser.BoolFlag("h") {
			return CmdHelp, args
		}
		return CmdHelp, args
	}

	switch positional[0] {
	case "diff", "d":
		args.Files = positional[1:]
		return CmdDiff, args
	case "distance", "dist":
		args.Files = positional[1:]
		return CmdDistance, args
	case "config", "cfg":
		if len(positional) > 1 {
			args.Subcommand = positional[1]
			args.Files = positional[2:]
		}
		return CmdConfig, args
	case "version", "v":
		return CmdVersion, args
	case "help", "h":
		return CmdHelp, args
	default:
		// Bare file arguments: implicit diff.
		args.Files = positional
		return CmdDiff, args
	}
}

// PrintUsage prints the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// HandleVersion prints version information.
func HandleVersion(args *Args) error {
	if args.JSON {
		return PrintJSON("version", map[string]string{
			"version":    Version,
			"git_commit": GitCommit,
			"build_date": BuildDate,
		})
	}
	fmt.Printf("levdiff %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	return nil
}
