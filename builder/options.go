// SPDX-License-Identifier: MIT
// Package: surfdist/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Option customizes a constructor by mutating builderConfig before the
// surface is emitted.
type Option func(*builderConfig)

// builderConfig is the resolved option set.
type builderConfig struct {
	scale  float64
	offset mgl64.Vec3
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{scale: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place applies scale then offset to a canonical coordinate.
func (c builderConfig) place(v mgl64.Vec3) mgl64.Vec3 {
	return v.Mul(c.scale).Add(c.offset)
}

// WithScale multiplies every coordinate by s. Panics unless s is finite and > 0.
func WithScale(s float64) Option {
	if !(s > 0) || math.IsInf(s, 1) {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOffset translates every vertex by v (applied after scaling).
func WithOffset(v mgl64.Vec3) Option {
	return func(c *builderConfig) {
		c.offset = v
	}
}
