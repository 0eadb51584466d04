// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the dense kernels and the
// Jacobi eigen solver.
package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/cscgen/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- 1. Sub / Transpose ----------

// TestSub_FastAndFallback checks both paths produce the same result.
func TestSub_FastAndFallback(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 2, 3, []float64{6, 5, 4, 3, 2, 1})

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	RequireDenseEqual(t, []float64{-5, -3, -1, 1, 3, 5}, diff)

	slow, err := matrix.Sub(readerOnly{a}, readerOnly{b})
	require.NoError(t, err)
	require.Equal(t, diff.RawRowMajor(), slow.RawRowMajor())
}

// TestSub_Errors covers nil and shape mismatch.
func TestSub_Errors(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 3, 2)

	_, err := matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose_Rectangular checks fast-path and fallback agreement.
func TestTranspose_Rectangular(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	RequireDenseEqual(t, []float64{1, 4, 2, 5, 3, 6}, tr)

	slow, err := matrix.Transpose(readerOnly{a})
	require.NoError(t, err)
	require.Equal(t, tr.RawRowMajor(), slow.RawRowMajor())

	// involution without mutating the input
	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	require.Equal(t, a.RawRowMajor(), back.RawRowMajor())
}

// TestDenseMulVec checks y = A·x and the vector validation.
func TestDenseMulVec(t *testing.T) {
	d := NewFilledDense(t, 3, 3, []float64{1, 0, 2, 0, 3, 0, 4, 0, 5})
	y := make([]float64, 3)
	require.NoError(t, d.MulVec(y, []float64{1, -1, 2}))
	require.Equal(t, []float64{5, -3, 14}, y)

	require.ErrorIs(t, d.MulVec(y, []float64{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, d.MulVec(y, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, d.MulVec(make([]float64, 2), []float64{1, 1, 1}), matrix.ErrDimensionMismatch)
}

// ---------- 2. Asymmetry ----------

// TestAsymmetry reports the largest |A[i,j] − A[j,i]| for dense and sparse input.
func TestAsymmetry(t *testing.T) {
	sym := MustCSC(t, 2, 2, []float64{2, 2, 2}, []int{1, 0, 1}, []int{0, 1, 3})
	d, err := matrix.Asymmetry(sym)
	require.NoError(t, err)
	require.Zero(t, d)

	skew := NewFilledDense(t, 3, 3, []float64{
		1, 2, 0,
		2.5, 1, -1,
		0, 3, 1,
	})
	d, err = matrix.Asymmetry(skew)
	require.NoError(t, err)
	require.InDelta(t, 4.0, d, 1e-15)

	d, err = matrix.Asymmetry(readerOnly{skew})
	require.NoError(t, err)
	require.InDelta(t, 4.0, d, 1e-15)

	_, err = matrix.Asymmetry(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Asymmetry(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- 3. Eigen ----------

// TestEigen_Errors verifies error paths: non-square, non-symmetric, and forced non-convergence.
func TestEigen_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.Eigen(MustDense(t, 3, 4), 1e-10, 50)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	asym := NewFilledDense(t, 2, 2, []float64{0, 1, 2, 0})
	_, _, err = matrix.Eigen(asym, 1e-12, 50)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	// zero iterations with nonzero off-diagonals
	sym := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 3})
	_, _, err = matrix.Eigen(sym, 1e-12, 0)
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}

// TestEigen_2x2_Analytic: [[2,1],[1,2]] has eigenvalues {1,3}; A·Q ≈ Q·D.
func TestEigen_2x2_Analytic(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	vals, q, err := matrix.Eigen(a, 1e-12, 50)
	require.NoError(t, err)

	got := append([]float64(nil), vals...)
	sort.Float64s(got)
	require.InDelta(t, 1.0, got[0], 1e-10)
	require.InDelta(t, 3.0, got[1], 1e-10)

	requireEigenEquation(t, a, q, vals, 1e-10)
}

// TestEigen_ScaleAware checks convergence on large-magnitude input, where an
// absolute threshold would never be reached.
func TestEigen_ScaleAware(t *testing.T) {
	const s = 1 << 40
	a := NewFilledDense(t, 3, 3, []float64{2 * s, s, 0, s, 2 * s, s, 0, s, 2 * s})
	vals, _, err := matrix.Eigen(a, 1e-12, 1000)
	require.NoError(t, err)
	maxMag, _ := matrix.Magnitudes(vals)
	require.InEpsilon(t, (2+math.Sqrt2)*s, maxMag, 1e-9)
}

// requireEigenEquation checks ‖A·q_k − λ_k·q_k‖∞ ≤ delta for every column k.
func requireEigenEquation(t *testing.T, a matrix.VecMultiplier, q *matrix.Dense, vals []float64, delta float64) {
	t.Helper()
	n := a.Rows()
	col := make([]float64, n)
	aq := make([]float64, n)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			col[i] = MustAt(t, q, i, k)
		}
		require.NoError(t, a.MulVec(aq, col))
		for i := 0; i < n; i++ {
			require.InDelta(t, vals[k]*col[i], aq[i], delta)
		}
	}
}
