// SPDX-License-Identifier: MIT
// Package: cscgen/builder
//
// value_fn.go - distributions for the nonzero values of sampled matrices.

package builder

import (
	"fmt"
	"math/rand"
)

// ValueFn produces one nonzero value from the configured RNG.
// It must be deterministic for a given RNG state; panics in constructors
// indicate programmer error in configuration.
type ValueFn func(rng *rand.Rand) float64

// UniformUnitValueFn draws from U[0,1), the default distribution.
// Complexity: O(1) time, O(1) space. Never panics.
func UniformUnitValueFn(rng *rand.Rand) float64 {
	return rng.Float64()
}

// UniformValueFn returns a ValueFn sampling uniformly in [min, max).
// Panics if max < min.
// Complexity: O(1) time, O(1) space.
func UniformValueFn(min, max float64) ValueFn {
	if max < min {
		panic(fmt.Sprintf("UniformValueFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	span := max - min

	return func(rng *rand.Rand) float64 {
		if span == 0 {
			return min
		}

		return min + rng.Float64()*span
	}
}
