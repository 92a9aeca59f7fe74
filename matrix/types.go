// SPDX-License-Identifier: MIT

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Dense is the only implementation; the interface keeps the validators and
// the text writer independent of its storage. All methods are O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf if the numeric
	// policy rejects v.
	Set(i, j int, v float64) error
}

// DefaultEpsilon is the tolerance used by symmetry checks in tests and tools.
const DefaultEpsilon = 1e-9
