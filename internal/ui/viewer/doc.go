// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package viewer presents a rendered comparison report in a full-screen
// scrollable terminal view.
//
// The viewer takes ownership of the terminal via the alternate screen,
// shows the report inside a viewport with a header (file pair and
// summary) and a footer (key help and scroll position), and returns
// control when the user quits.
//
// # Key Functions
//
//   - Run: open the viewer over a report and block until dismissed
//   - New: construct the underlying bubbletea model directly
//
// # Keys
//
//   - up/down, pgup/pgdn, mouse wheel: scroll
//   - q, esc, ctrl+c: quit
package viewer
