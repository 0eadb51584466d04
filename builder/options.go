// SPDX-License-Identifier: MIT
// Package: cscgen/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Samplers themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible fixtures; log the seed you used.
//   • WithDensityPolicy(DensityFixed, p) pins the density; DensityInverse ignores p.

package builder

import (
	"math/rand" // RNG source for stochastic samplers
)

// BuilderOption customizes a sampler by mutating a builderConfig instance
// before sampling begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic samplers.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueFn overrides the nonzero value generator (default U[0,1)).
// The function receives the configured RNG. Panics on nil.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithSizePolicy selects how matrix dimensions are drawn from a size exponent.
// Panics on an unknown policy value.
func WithSizePolicy(p SizePolicy) BuilderOption {
	if p != SizeBounded && p != SizeExponential {
		panic("builder: WithSizePolicy(unknown)")
	}
	return func(c *builderConfig) {
		c.sizePolicy = p
	}
}

// WithMaxSize caps drawn dimensions; 0 disables the cap. Panics if n < 0.
func WithMaxSize(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithMaxSize(n<0)")
	}
	return func(c *builderConfig) {
		c.maxSize = n
	}
}

// WithDensityPolicy selects the density policy. fixed is the density used by
// DensityFixed and must lie in [0,1]; it is ignored by DensityInverse.
// Panics on an unknown policy or an out-of-range fixed density.
func WithDensityPolicy(p DensityPolicy, fixed float64) BuilderOption {
	if p != DensityInverse && p != DensityFixed {
		panic("builder: WithDensityPolicy(unknown)")
	}
	if fixed < probMin || fixed > probMax {
		panic("builder: WithDensityPolicy(fixed not in [0,1])")
	}
	return func(c *builderConfig) {
		c.densityPolicy = p
		c.fixedDensity = fixed
	}
}
