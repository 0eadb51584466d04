// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/cscgen/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zero := func(r, c int) matrix.Reader { return MustDense(t, r, c) }

	tests := []struct {
		name    string
		a, b    matrix.Reader
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zero(2, 2), matrix.ErrNilMatrix},
		{"second nil", zero(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zero(2, 3), zero(2, 3), nil},
		{"row mismatch", zero(2, 3), zero(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zero(2, 3), zero(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateSymmetric covers tolerance, shape and the generic path.
func TestValidateSymmetric(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 2.001, 1})
	require.ErrorIs(t, matrix.ValidateSymmetric(a, 1e-6), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(a, 1e-2))
	require.NoError(t, matrix.ValidateSymmetric(readerOnly{a}, -1e-2)) // sign ignored
	require.ErrorIs(t, matrix.ValidateSymmetric(readerOnly{a}, 1e-6), matrix.ErrAsymmetry)

	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSymmetric(a, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
}

// TestValidateCSC_NaN ensures non-finite stored values are rejected.
func TestValidateCSC_NaN(t *testing.T) {
	err := matrix.ValidateCSC(1, 1, []float64{math.Inf(1)}, []int{0}, []int{0, 1})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestValidateCSC_PointerOvershoot rejects pointers that pass nnz and come
// back down, before any row index beyond the arrays is read.
func TestValidateCSC_PointerOvershoot(t *testing.T) {
	tests := []struct {
		name   string
		colPtr []int
	}{
		{"overshoot then drop", []int{0, 5, 1}},
		{"overshoot in the middle", []int{0, 3, 0, 1}},
		{"negative pointer", []int{0, -2, 1}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				err = matrix.ValidateCSC(len(tc.colPtr)-1, len(tc.colPtr)-1, []float64{1}, []int{0}, tc.colPtr)
			})
			require.ErrorIs(t, err, matrix.ErrMalformedCSC)
		})
	}
}

// TestValidateVecLen covers nil and short vectors.
func TestValidateVecLen(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}
