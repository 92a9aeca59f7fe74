// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Canonical validation checks for distance matrices (shape, symmetry, diagonal).
//  - Return sentinel errors tagged with the validator name.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"math"
)

// ValidateSquare ensures m is non-nil and Rows()==Cols().
func ValidateSquare(m Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return matrixErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// sameDistance compares two distances under tol; two +Inf entries are equal.
func sameDistance(a, b, tol float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}

	return math.Abs(a-b) <= tol
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j. A pair of +Inf entries is symmetric;
// +Inf against a finite value is not.
//
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on a
// NaN/Inf tolerance, ErrAsymmetry on violation.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return matrixErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var aij, aji float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if !sameDistance(aij, aji, tol) {
				return matrixErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |A[i,i]| ≤ tol on a square matrix.
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf("ValidateZeroDiagonal", err)
	}
	for i := 0; i < m.Rows(); i++ {
		v, _ := m.At(i, i)
		if !(math.Abs(v) <= math.Abs(tol)) {
			return matrixErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}
