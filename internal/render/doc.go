// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render formats change reports for the terminal.
//
// Insertions are green (+), deletions red (-), substitutions yellow (~),
// matching the markers used throughout the CLI. Colors degrade to plain
// text automatically when the configured lipgloss color profile is
// Ascii (non-TTY output, NO_COLOR).
package render
