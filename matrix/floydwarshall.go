// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
)

const opFloydWarshall = "FloydWarshall"

// floydWarshallInPlace runs the k-i-j triple loop directly on the flat buffer.
func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in place.
//
// The input must be a square distance matrix: 0 on the diagonal, the direct
// edge weight where an edge exists and +Inf elsewhere. On return m[i,j] holds
// the shortest-path distance from i to j (+Inf if unreachable).
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare from ValidateSquare.
//
// Complexity:
//   - Time O(n³), Space O(1).
func FloydWarshall(m *Dense) error {
	if m == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}
	floydWarshallInPlace(m)

	return nil
}
