// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose whole rows (Row) so parallel producers can fill disjoint row ranges directly.
//   - Enforce the distance numeric policy: +Inf means "no path", NaN and -Inf
//     are rejected.

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major distance matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

var _ Matrix = (*Dense)(nil)

// NewDistances creates an r×c distance matrix filled with +Inf.
// MAIN DESCRIPTION:
//   - Constructor for shortest-path results: every entry starts unreachable.
//
// Behavior highlights:
//   - Zero rows or columns are legal and produce an empty matrix (a distance
//     computation over zero sources is not an error).
//   - Set accepts +Inf; NaN and -Inf are still rejected.
//
// Errors:
//   - ErrInvalidDimensions on negative dimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDistances(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]float64, rows*cols)
	inf := math.Inf(1)
	for i := range buf {
		buf[i] = inf
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// accepts reports whether v is a distance: finite or +Inf, never NaN or -Inf.
func accepts(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, -1)
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write honoring the distance numeric policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for rejected values.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if !accepts(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns row i as a slice sharing the matrix storage.
// MAIN DESCRIPTION:
//   - Zero-copy access to one full row for bulk producers and consumers.
//
// Behavior highlights:
//   - The returned slice has len == cap == Cols(); appending to it never
//     spills into row i+1.
//   - Writes through the slice bypass the numeric policy; producers are
//     responsible for writing only policy-conforming values.
//   - Two different rows never alias, which is what makes disjoint row
//     ownership across goroutines race-free.
//
// Errors:
//   - ErrOutOfRange when i is not a row index.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	lo := i * m.c

	return m.data[lo : lo+m.c : lo+m.c], nil
}
