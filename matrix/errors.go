// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for easy grepping. Return the
// sentinels via %w wrapping with a method tag; callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates negative dimensions.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the requested tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a diagonal entry that is not ~0 (within eps).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNaNInf signals a value rejected by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRaggedRows indicates text input whose rows have differing lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")
)

// matrixErrorf tags err with the operation name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
