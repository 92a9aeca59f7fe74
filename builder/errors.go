// SPDX-License-Identifier: MIT
// Package: surfdist/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w (see builderErrorf).
//   • Constructors never panic at runtime; option constructors panic on
//     meaningless values.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrUnsupportedSolid indicates a Platonic solid that cannot be emitted as a
// triangle mesh (Cube, Dodecahedron) or an unknown name.
var ErrUnsupportedSolid = errors.New("builder: unsupported solid")

// builderErrorf prefixes err with the constructor name and a formatted message.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
