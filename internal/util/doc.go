// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for levdiff.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - SafeSubstring: substring by rune indices
//   - RuneLen: character count of a UTF-8 string
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
