// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and engines.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cscgen/matrix"
	"github.com/stretchr/testify/require"
)

// readerOnly wraps any Reader to hide its concrete type from type assertions.
// Use it to force the generic (non-*Dense, non-*CSC) paths in code under test.
type readerOnly struct{ matrix.Reader }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return d
}

// NewFilledDense returns an r×c Dense holding vals in row-major order.
// Prefer for small exact-equality tests.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return d
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Reader, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustCSC builds a CSC from raw arrays or fails the test.
func MustCSC(t *testing.T, rows, cols int, values []float64, rowIdx, colPtr []int) *matrix.CSC {
	t.Helper()
	m, err := matrix.NewCSC(rows, cols, values, rowIdx, colPtr)
	require.NoError(t, err)

	return m
}

// RandomSymmetricCOO samples an n×n symmetric COO with roughly density·n²
// nonzeros drawn from U(-1,1). Deterministic per seed.
func RandomSymmetricCOO(t *testing.T, n int, density float64, seed int64) *matrix.COO {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, err := matrix.NewCOO(n, n)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if rng.Float64() < density {
				require.NoError(t, r.Append(i, j, rng.Float64()*2-1))
			}
		}
	}
	s, err := r.AddTranspose()
	require.NoError(t, err)

	return s
}

// RequireDenseEqual compares a Reader against a row-major expectation exactly.
func RequireDenseEqual(t *testing.T, want []float64, m matrix.Reader) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	require.Len(t, want, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.Equalf(t, want[i*c+j], MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// RelClose reports |a-b| ≤ rtol·max(1,|b|).
func RelClose(a, b, rtol float64) bool {
	return math.Abs(a-b) <= rtol*math.Max(1, math.Abs(b))
}

// nan returns a quiet NaN.
func nan() float64 { return math.NaN() }
