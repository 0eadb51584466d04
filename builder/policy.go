// SPDX-License-Identifier: MIT
// Package: cscgen/builder
//
// policy.go - size and density policies for random fixture matrices.
//
// Size policies map a size exponent e to a half-open integer interval
// [lo, hi) from which the matrix dimension is drawn uniformly:
//   • SizeExponential: [2^e, 2^(2e+1)) (default)
//   • SizeBounded:     [1, 2^(4+e))
//
// Density policies map a drawn dimension to the fraction of nonzero cells:
//   • DensityInverse: 1/size (about one nonzero per column)
//   • DensityFixed:   a configured constant in [0,1]

package builder

import (
	"fmt"
	"strings"
)

// SizePolicy selects the interval a matrix dimension is drawn from.
type SizePolicy int

const (
	// SizeBounded draws from [1, 2^(4+e)).
	SizeBounded SizePolicy = iota
	// SizeExponential draws from [2^e, 2^(2e+1)).
	SizeExponential
)

// DensityPolicy selects how the nonzero fraction depends on the dimension.
type DensityPolicy int

const (
	// DensityInverse uses 1/size.
	DensityInverse DensityPolicy = iota
	// DensityFixed uses the configured constant.
	DensityFixed
)

const (
	methodSampleSize = "SampleSize"
	methodDensity    = "Density"

	// MaxSizeExp keeps 2^(2e+1) inside a 63-bit int for every policy.
	MaxSizeExp = 30

	boundedOffset = 4
)

var (
	sizePolicyNames    = [...]string{SizeBounded: "bounded", SizeExponential: "exponential"}
	densityPolicyNames = [...]string{DensityInverse: "inverse", DensityFixed: "fixed"}
)

// String returns the configuration name of the policy.
func (p SizePolicy) String() string {
	if p < 0 || int(p) >= len(sizePolicyNames) {
		return fmt.Sprintf("SizePolicy(%d)", int(p))
	}

	return sizePolicyNames[p]
}

// String returns the configuration name of the policy.
func (p DensityPolicy) String() string {
	if p < 0 || int(p) >= len(densityPolicyNames) {
		return fmt.Sprintf("DensityPolicy(%d)", int(p))
	}

	return densityPolicyNames[p]
}

// ParseSizePolicy resolves a configuration name (case-insensitive).
// Returns ErrUnknownPolicy for anything else.
func ParseSizePolicy(name string) (SizePolicy, error) {
	for i, s := range sizePolicyNames {
		if strings.EqualFold(name, s) {
			return SizePolicy(i), nil
		}
	}

	return 0, fmt.Errorf("size policy %q: %w", name, ErrUnknownPolicy)
}

// ParseDensityPolicy resolves a configuration name (case-insensitive).
// Returns ErrUnknownPolicy for anything else.
func ParseDensityPolicy(name string) (DensityPolicy, error) {
	for i, s := range densityPolicyNames {
		if strings.EqualFold(name, s) {
			return DensityPolicy(i), nil
		}
	}

	return 0, fmt.Errorf("density policy %q: %w", name, ErrUnknownPolicy)
}

// SizeRange returns the half-open interval [lo, hi) the policy draws from
// for size exponent e. Returns ErrBadSize when e is outside [0, MaxSizeExp].
func (p SizePolicy) SizeRange(e int) (lo, hi int, err error) {
	if e < 0 || e > MaxSizeExp {
		return 0, 0, builderErrorf(methodSampleSize, ErrBadSize, "e=%d not in [0,%d]", e, MaxSizeExp)
	}
	switch p {
	case SizeBounded:
		return 1, 1 << (boundedOffset + e), nil
	case SizeExponential:
		return 1 << e, 1 << (2*e + 1), nil
	default:
		return 0, 0, builderErrorf(methodSampleSize, ErrUnknownPolicy, "%s", p)
	}
}

// SampleSize draws a matrix dimension for size exponent e using the
// configured size policy and cap.
//
// Implementation:
//   - Stage 1: resolve [lo, hi) from the policy.
//   - Stage 2: with a cap m > 0, shrink hi to m+1; if lo > m the draw
//     collapses to m.
//   - Stage 3: draw lo + rng.Intn(hi-lo).
//
// Errors: ErrBadSize, ErrUnknownPolicy, ErrNeedRandSource.
// Complexity: O(1).
func SampleSize(e int, opts ...BuilderOption) (int, error) {
	cfg := newBuilderConfig(opts...)

	lo, hi, err := cfg.sizePolicy.SizeRange(e)
	if err != nil {
		return 0, err
	}
	if cfg.rng == nil {
		return 0, builderErrorf(methodSampleSize, ErrNeedRandSource, "e=%d", e)
	}

	if cfg.maxSize > 0 {
		if lo > cfg.maxSize {
			return cfg.maxSize, nil
		}
		if hi > cfg.maxSize+1 {
			hi = cfg.maxSize + 1
		}
	}

	return lo + cfg.rng.Intn(hi-lo), nil
}

// Density returns the nonzero fraction for a size×size matrix under the
// configured density policy. Returns ErrTooSmall when size < 1.
func Density(size int, opts ...BuilderOption) (float64, error) {
	if size < minSparseDim {
		return 0, builderErrorf(methodDensity, ErrTooSmall, "size=%d < min=%d", size, minSparseDim)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.densityPolicy == DensityFixed {
		return cfg.fixedDensity, nil
	}

	return 1 / float64(size), nil
}
