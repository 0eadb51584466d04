// SPDX-License-Identifier: MIT
// Package: cscgen/builder
//
// impl_random_sparse.go - RandomSparse(n, density) sampler.
//
// Canonical model:
//   - k = round-half-even(density·n·n) distinct cells chosen uniformly from
//     the n×n grid (sampling without replacement), the same placement model
//     as scipy.sparse.rand.
//   - Each chosen cell receives cfg.valueFn(rng), U[0,1) by default.
//   - A flat cell index t maps to (row, col) = (t mod n, t div n), i.e. the
//     grid is enumerated column-major.
//
// Contract:
//   - n ≥ 1 (else ErrTooSmall); n·n must fit in an int (else ErrBadSize).
//   - 0 ≤ density ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when k > 0 (else ErrNeedRandSource).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(k) expected (Floyd's sampling with a hash set).
//   - Space: O(k).
//
// Determinism:
//   - Cells are drawn first (in Floyd order), then values in the same order.
//     Fixed seed and options give an identical triplet list.

package builder

import (
	"math"

	"github.com/katalvlaran/cscgen/matrix"
)

// File-local constants (no magic literals; stable method tag and domains).
const (
	methodRandomSparse = "RandomSparse"
	minSparseDim       = 1
	probMin            = 0.0
	probMax            = 1.0
)

// maxSparseDim bounds n so that n·n does not overflow.
const maxSparseDim = 3037000499 // ⌊√(2^63−1)⌋

// RandomSparse samples an n×n matrix holding round(density·n²) nonzeros at
// distinct uniformly chosen cells.
func RandomSparse(n int, density float64, opts ...BuilderOption) (*matrix.COO, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if n < minSparseDim {
		return nil, builderErrorf(methodRandomSparse, ErrTooSmall, "n=%d < min=%d", n, minSparseDim)
	}
	if n > maxSparseDim {
		return nil, builderErrorf(methodRandomSparse, ErrBadSize, "n=%d overflows n·n", n)
	}
	if density < probMin || density > probMax || math.IsNaN(density) {
		return nil, builderErrorf(methodRandomSparse, ErrInvalidProbability,
			"density=%.6f not in [%.1f,%.1f]", density, probMin, probMax)
	}

	cfg := newBuilderConfig(opts...)
	cells := n * n
	k := int(math.RoundToEven(density * float64(cells)))
	if k > cells {
		k = cells
	}

	out, err := matrix.NewCOO(n, n)
	if err != nil {
		return nil, builderErrorf(methodRandomSparse, err, "n=%d", n)
	}
	if k == 0 {
		return out, nil
	}
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomSparse, ErrNeedRandSource, "k=%d", k)
	}

	// 2) Choose k distinct flat indices.
	picked := sampleDistinct(cfg, cells, k)

	// 3) Draw values in pick order and place them.
	var row, col int
	for _, t := range picked {
		col, row = t/n, t%n
		if err = out.Append(row, col, cfg.valueFn(cfg.rng)); err != nil {
			return nil, builderErrorf(methodRandomSparse, err, "cell (%d,%d)", row, col)
		}
	}

	return out, nil
}

// sampleDistinct returns k distinct integers from [0, total) using Floyd's
// algorithm: for j in [total−k, total) draw t ∈ [0, j]; keep t unless it was
// already taken, in which case keep j. Every k-subset is equally likely.
func sampleDistinct(cfg builderConfig, total, k int) []int {
	seen := make(map[int]struct{}, k)
	picked := make([]int, 0, k)

	var t int
	for j := total - k; j < total; j++ {
		t = int(cfg.rng.Int63n(int64(j) + 1))
		if _, dup := seen[t]; dup {
			t = j
		}
		seen[t] = struct{}{}
		picked = append(picked, t)
	}

	return picked
}
