// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package edit implements the Levenshtein edit-distance engine.
//
// The engine consumes two ordered sequences of comparable symbols and
// produces the minimum number of single-symbol insertions, deletions,
// and substitutions transforming one into the other, and optionally the
// edit script that achieves it.
//
// # Key Functions
//
//   - Distance: minimum edit distance between two symbol sequences
//   - EditScript: the sequence of edit operations realizing that distance
//   - Apply: replays a script against a sequence (round-trip check)
//
// # Determinism
//
// When multiple backtrace moves tie on cost, the engine prefers, in fixed
// order: Match, then Substitute, then Delete, then Insert (diagonal move
// first, then up, then left). Different tie-breaks produce different but
// equally optimal scripts; this one is part of the package contract so
// that scripts are reproducible.
//
// # Usage
//
//	d := edit.Distance([]rune("kitten"), []rune("sitting")) // 3
//
//	script, err := edit.EditScript([]rune("flaw"), []rune("lawn"))
//	if err != nil {
//		// inputs too large for a cost matrix
//	}
//	fmt.Println(script.Cost()) // 2
package edit
