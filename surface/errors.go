// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the root sentinel for malformed input anywhere in surfdist.
// Callers branch on it with errors.Is; the specific sentinels below wrap it.
var ErrConfiguration = errors.New("surfdist: configuration error")

var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, NumVertices).
	ErrVertexOutOfRange = fmt.Errorf("%w: vertex index out of range", ErrConfiguration)

	// ErrEmptySurface indicates that a surface with zero vertices was supplied
	// to an operation that requires at least one.
	ErrEmptySurface = fmt.Errorf("%w: surface has no vertices", ErrConfiguration)

	// ErrMalformedInput indicates a text mesh or point list that cannot be parsed.
	ErrMalformedInput = fmt.Errorf("%w: malformed input", ErrConfiguration)

	// ErrNilSurface indicates that a nil *Surface was passed.
	ErrNilSurface = fmt.Errorf("%w: surface is nil", ErrConfiguration)
)

// lineErrorf attaches a reader tag and a 1-based line number to err.
func lineErrorf(tag string, line int, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: line %d: %s: %w", tag, line, fmt.Sprintf(format, args...), err)
}
