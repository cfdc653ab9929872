// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// levenshtein.go - Levenshtein distance and edit-script backtrace.
package edit

// =============================================================================
// DISTANCE
// =============================================================================

// Distance returns the minimum number of single-symbol insertions,
// deletions, and substitutions transforming a into b.
//
// It uses two rows instead of the full matrix, so memory is O(min len)
// and no resource guard is needed. Guarantees:
//
//	Distance(a, b) == Distance(b, a)
//	Distance(a, a) == 0
//	abs(len(a)-len(b)) <= Distance(a, b) <= max(len(a), len(b))
func Distance[S comparable](a, b []S) int {
	// Trim the common prefix and suffix; they contribute nothing.
	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		a = a[1:]
		b = b[1:]
	}
	for len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[len(b)-1] {
		a = a[:len(a)-1]
		b = b[:len(b)-1]
	}

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Keep the row proportional to the shorter sequence.
	if len(a) < len(b) {
		a, b = b, a
	}

	cols := len(b) + 1
	prev := make([]int, cols)
	curr := make([]int, cols)
	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j < cols; j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution or match
			)
		}
		prev, curr = curr, prev
	}

	return prev[cols-1]
}

// =============================================================================
// EDIT SCRIPT
// =============================================================================

// EditScript returns the sequence of edit operations transforming a into
// b at minimum cost, in forward order. The number of non-Match operations
// equals Distance(a, b).
//
// It fills the full cost matrix and backtracks from (len(a), len(b)) to
// (0, 0), preferring Match, then Substitute, then Delete, then Insert
// whenever costs tie. Returns ErrMatrixTooLarge if the matrix would
// exceed MaxMatrixCells.
func EditScript[S comparable](a, b []S) (Script[S], error) {
	m, err := newMatrix(len(a)+1, len(b)+1)
	if err != nil {
		return nil, err
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				m.set(i, j, m.at(i-1, j-1))
				continue
			}
			m.set(i, j, 1+min3(
				m.at(i-1, j),   // deletion
				m.at(i, j-1),   // insertion
				m.at(i-1, j-1), // substitution
			))
		}
	}

	// Backtrace. Operations come out in reverse order.
	script := make(Script[S], 0, max2(len(a), len(b)))
	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && m.at(i, j) == m.at(i-1, j-1):
			script = append(script, Op[S]{Kind: Match, From: a[i-1], To: b[j-1]})
			i--
			j--
		case i > 0 && j > 0 && m.at(i, j) == m.at(i-1, j-1)+1:
			script = append(script, Op[S]{Kind: Substitute, From: a[i-1], To: b[j-1]})
			i--
			j--
		case i > 0 && m.at(i, j) == m.at(i-1, j)+1:
			script = append(script, Op[S]{Kind: Delete, From: a[i-1]})
			i--
		default:
			script = append(script, Op[S]{Kind: Insert, To: b[j-1]})
			j--
		}
	}

	// Reverse into forward (start-to-end) order.
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}

	return script, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// min3 returns the minimum of three integers.
func min3(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}

// max2 returns the maximum of two integers.
func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}
