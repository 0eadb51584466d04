// SPDX-License-Identifier: MIT

// Package matrix - power iteration for the dominant eigenvalue magnitude.
//
// This is the algorithm the fixture consumer runs against the .in files:
// repeated normalized multiplication from a random start vector, with a
// component-wise ratio estimate and a residual acceptance test.

package matrix

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const opPower = "PowerIteration"

// VecMultiplier is anything that can compute dst = M·x for a square M.
// *CSC and *Dense implement it.
type VecMultiplier interface {
	Rows() int
	Cols() int
	MulVec(dst, x []float64) error
}

// nnzCounter lets PowerIteration short-circuit empty sparse matrices.
type nnzCounter interface{ NNZ() int }

// PowerIteration estimates max|λ| of a square matrix.
// Implementation:
//   - Stage 1: empty matrices (no nonzeros) answer 0 immediately.
//   - Stage 2: up to attempts restarts, each from a random vector in [0,1)ⁿ.
//   - Stage 3: per round, apply `inner` normalized multiplications, then one more
//     product y = A·x; estimate λ = max_i |y_i/x_i| over pairs with both sides nonzero.
//   - Stage 4: accept when Σ_i | |y_i|/λ − |x_i| | ≤ n·threshold; otherwise continue
//     from y normalized. λ == 0 or a vanishing vector abandons the attempt.
//
// Errors:
//   - ErrDimensionMismatch (non-square), ErrNotConverged (all attempts exhausted).
//
// Determinism:
//   - Deterministic for a seeded RNG (WithSeed/WithRand); otherwise uses the
//     package-level math/rand source.
//
// Complexity:
//   - Time O(attempts·rounds·(inner+1)·cost(MulVec)), Space O(n).
func PowerIteration(m VecMultiplier, opts ...Option) (float64, error) {
	if m.Rows() != m.Cols() {
		return 0, matrixErrorf(opPower, ErrDimensionMismatch)
	}
	o := NewOptions(opts...)
	n := m.Cols()

	if c, ok := m.(nnzCounter); ok && c.NNZ() == 0 {
		return 0, nil
	}
	if d, ok := m.(*Dense); ok && maxAbs(d.data) == 0 {
		return 0, nil
	}

	uniform := rand.Float64
	if o.rng != nil {
		uniform = o.rng.Float64
	}

	x := make([]float64, n)
	y := make([]float64, n)
	limit := float64(n) * o.threshold

	var attempt, round, step, i int
	var lambda, residual float64
	var err error
	for attempt = 0; attempt < o.attempts; attempt++ {
		for i = range x {
			x[i] = uniform()
		}

	rounds:
		for round = 0; round < o.rounds; round++ {
			for step = 0; step < o.inner; step++ {
				if err = m.MulVec(y, x); err != nil {
					return 0, matrixErrorf(opPower, err)
				}
				x, y = y, x
				if !normalize(x) {
					break rounds // vector collapsed to zero; restart
				}
			}

			if err = m.MulVec(y, x); err != nil {
				return 0, matrixErrorf(opPower, err)
			}

			lambda = 0
			for i = 0; i < n; i++ {
				if y[i] != 0 && x[i] != 0 {
					lambda = math.Max(lambda, math.Abs(y[i]/x[i]))
				}
			}
			if lambda == 0 {
				break // nothing left to learn from this start vector
			}

			residual = 0
			for i = 0; i < n; i++ {
				residual += math.Abs(math.Abs(y[i])/lambda - math.Abs(x[i]))
			}
			if residual <= limit {
				return lambda, nil
			}

			x, y = y, x
			if !normalize(x) {
				break
			}
		}
	}

	return 0, matrixErrorf(opPower, fmt.Errorf("%d attempts: %w", o.attempts, ErrNotConverged))
}

// normalize scales x to unit Euclidean norm. Reports false for a zero vector.
func normalize(x []float64) bool {
	norm := floats.Norm(x, 2)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return false
	}
	floats.Scale(1/norm, x)

	return true
}
