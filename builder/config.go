// SPDX-License-Identifier: MIT
// Package: cscgen/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all sampler knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng           = nil            (samplers that need randomness fail with ErrNeedRandSource)
//   • valueFn       = uniform [0,1)  (same distribution as scipy.sparse.rand)
//   • sizePolicy    = SizeExponential
//   • densityPolicy = DensityInverse
//   • fixedDensity  = 0.25
//   • maxSize       = 0              (no cap)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by samplers.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Value generator for nonzeros.
	valueFn ValueFn

	// Size draw policy and optional cap (0 = none).
	sizePolicy SizePolicy
	maxSize    int

	// Density policy; fixedDensity is used by DensityFixed only.
	densityPolicy DensityPolicy
	fixedDensity  float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultFixedDensity = 0.25
	defaultMaxSize      = 0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:           nil,
		valueFn:       UniformUnitValueFn,
		sizePolicy:    SizeExponential,
		maxSize:       defaultMaxSize,
		densityPolicy: DensityInverse,
		fixedDensity:  defaultFixedDensity,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
