package config

import (
	"fmt"

	"github.com/katalvlaran/surfdist/surface"
)

// ErrInvalidConfig indicates a configuration that cannot drive a run. It is
// part of the surface.ErrConfiguration class.
var ErrInvalidConfig = fmt.Errorf("%w: invalid config", surface.ErrConfiguration)

// fieldErrorf reports a bad field.
func fieldErrorf(field, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}
