// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements command parsing and handlers for levdiff.
//
// Commands:
//   - diff (default): compare two files and print the change report
//   - distance: print only the edit distance
//   - config: show or change configuration
//   - version, help
//
// The package also owns terminal concerns shared by all commands: TTY
// detection, NO_COLOR/FORCE_COLOR handling, shared lipgloss styles,
// structured command errors, and exit-code mapping.
package cli
