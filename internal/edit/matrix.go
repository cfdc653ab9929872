// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// matrix.go - Flat cost matrix backing the edit-distance computation.
package edit

import (
	"errors"
	"fmt"
)

// MaxMatrixCells caps the cost matrix size. A pair of 8k-symbol inputs
// fits comfortably; anything past the cap is a resource failure, not a
// logic failure, and is reported before any allocation happens.
const MaxMatrixCells = 64 << 20

// ErrMatrixTooLarge is returned when the input sequences would require a
// cost matrix above MaxMatrixCells.
var ErrMatrixTooLarge = errors.New("edit: input sequences too large for cost matrix")

// matrix is a (rows x cols) table of non-negative costs stored as a
// single flat slice. Cell (i, j) holds the minimum number of edits
// transforming the first i source symbols into the first j target
// symbols. It is owned by one engine invocation and never escapes.
type matrix struct {
	rows  int
	cols  int
	cells []int
}

// newMatrix allocates a matrix with row 0 and column 0 initialized to
// the index value (all-deletions / all-insertions baseline).
func newMatrix(rows, cols int) (*matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("edit: invalid matrix dimensions %dx%d", rows, cols)
	}
	if rows > MaxMatrixCells/cols {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrMatrixTooLarge, rows, cols)
	}

	m := &matrix{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}
	for i := 0; i < rows; i++ {
		m.set(i, 0, i)
	}
	for j := 0; j < cols; j++ {
		m.set(0, j, j)
	}
	return m, nil
}

func (m *matrix) at(i, j int) int {
	return m.cells[i*m.cols+j]
}

func (m *matrix) set(i, j, v int) {
	m.cells[i*m.cols+j] = v
}
