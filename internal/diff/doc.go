// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff turns two decoded texts into a change report.
//
// It splits each text into symbols (individual characters or whole
// lines), runs the edit-distance engine over the symbol sequences, and
// annotates the recovered edit script with 1-based source and target
// positions.
//
// # Key Types
//
//   - Granularity: per-character or per-line comparison
//   - Change: one edit with its type, symbols, and positions
//   - Report: ordered changes plus statistics for a file pair
//
// # Usage
//
//	report, err := diff.Compare("a.txt", "b.txt", textA, textB, diff.GranularityChar)
//	if err != nil {
//		// inputs too large for the engine
//	}
//	fmt.Println(report.Stats.Distance)
package diff
