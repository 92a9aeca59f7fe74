// SPDX-License-Identifier: MIT

package distmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for distance matrix computation.
var (
	// ErrComputationFailure indicates an unrecoverable fault inside a worker.
	// The whole computation is aborted and no matrix is returned.
	ErrComputationFailure = errors.New("distmap: computation failure")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("distmap: workers must be >= 1")
)

const (
	methodCompute      = "Compute"
	methodComputeGraph = "ComputeGraph"
)

// failuref wraps cause as a computation failure tagged with the failing rows.
func failuref(lo, hi int, cause error) error {
	return fmt.Errorf("%s: rows [%d,%d): %w: %w", methodComputeGraph, lo, hi, ErrComputationFailure, cause)
}
