// SPDX-License-Identifier: MIT
// Package: cscgen/builder
//
// impl_symmetric.go - scaled symmetric sparse matrices in CSC form.

package builder

import (
	"github.com/katalvlaran/cscgen/matrix"
)

const methodSymmetricSparse = "SymmetricSparse"

// SymmetricSparse samples R = RandomSparse(n, density), scales it by scale and
// returns S = R + Rᵗ in canonical CSC form. Diagonal entries of R appear
// doubled in S; cells where the sum is exactly zero are dropped.
//
// S is exactly symmetric: S[i][j] and S[j][i] are the same two addends.
//
// Errors: everything RandomSparse returns, plus matrix sentinels from the
// symmetrization/compression steps (wrapped).
// Complexity: O(k log k) for k sampled nonzeros.
func SymmetricSparse(n int, density, scale float64, opts ...BuilderOption) (*matrix.CSC, error) {
	r, err := RandomSparse(n, density, opts...)
	if err != nil {
		return nil, err
	}
	r.Scale(scale)

	s, err := r.AddTranspose()
	if err != nil {
		return nil, builderErrorf(methodSymmetricSparse, err, "n=%d", n)
	}
	csc, err := s.ToCSC()
	if err != nil {
		return nil, builderErrorf(methodSymmetricSparse, err, "n=%d", n)
	}

	return csc, nil
}
