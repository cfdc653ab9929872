// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package input reads and decodes the text files handed to the engine.
//
// The edit-distance engine assumes well-formed, already-decoded symbol
// sequences; this package is the collaborator that guarantees it. It
// enforces the configured size cap, detects the input encoding (UTF-8
// with or without BOM, UTF-16 LE/BE by BOM, Latin-1 fallback), and
// returns plain UTF-8 text. All I/O and decoding failures surface here,
// before the engine ever runs.
package input
