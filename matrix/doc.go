// Package matrix provides the dense distance matrix produced by surfdist and
// its plain-text exporter.
//
// Overview:
//
//   - Dense is a row-major float64 matrix backed by one flat slice
//     (offset = i*cols + j). At/Set are bounds-checked and never panic.
//   - Row(i) hands out the i-th row as a slice sharing storage. Distinct rows
//     never overlap, so goroutines that own disjoint row ranges may write
//     concurrently without locking.
//   - Numeric policy: NewDistances fills every entry with +Inf, the
//     "unreachable" sentinel. Set accepts finite values and +Inf; NaN and -Inf
//     are rejected with ErrNaNInf.
//
// Verification helpers:
//
//   - ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol, treating two +Inf
//     entries as equal.
//   - FloydWarshall runs all-pairs shortest paths in place. On small meshes it
//     is the exact oracle the single-source engine is checked against.
//
// Text format (WriteText / Dump / ReadText / Load):
//
//   - One matrix row per line, values separated by a single space, no header.
//   - Values use strconv 'g' formatting with the shortest exact representation;
//     the unreachable sentinel is written as "+Inf".
//
// Complexity quicksheet:
//   - NewDistances: O(r*c); At/Set/Row: O(1);
//     ValidateSymmetric: O(n²); FloydWarshall: O(n³); WriteText: O(r*c).
package matrix
