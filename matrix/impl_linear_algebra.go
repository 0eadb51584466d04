// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise subtraction, transpose, the asymmetry measure built on them,
// and the Jacobi symmetric eigensolver.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - All kernels use central validators and return sentinels wrapped via matrixErrorf.
//   - Every kernel has a *Dense fast-path on the flat buffer and a generic At/Set fallback.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot products and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub       = "Sub"
	opTranspose = "Transpose"
	opAsymmetry = "Asymmetry"
	opEigen     = "Eigen"
	opMulVec    = "MulVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseCopyOf materializes any Reader as a fresh *Dense (fast copy for *Dense and *CSC).
func denseCopyOf(m Reader) (*Dense, error) {
	switch v := m.(type) {
	case *Dense:
		return v.Clone().(*Dense), nil
	case *CSC:
		return v.ToDense()
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var x float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if x, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = x
		}
	}

	return out, nil
}

// Sub computes the element-wise difference C = A − B and returns a fresh Dense result.
// Operands are not mutated.
//
// Determinism:
//   - Fast-path: single flat slice walk 0..(r*c−1).
//   - Fallback: fixed nested loops i=0..r−1, j=0..c−1.
//
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Reader) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] - db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opSub, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opSub, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av - bv
		}
	}

	return res, nil
}

// Transpose returns Aᵗ as a fresh Dense (cols×rows).
// Fast-path for *Dense scatters the flat buffer; other readers go through At.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Reader) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Asymmetry returns max|A[i,j] − A[j,i]| of a square matrix, i.e. the largest
// entry of A − Aᵗ. A symmetric matrix yields exactly 0.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: Time O(n²), Space O(n²).
func Asymmetry(m Reader) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opAsymmetry, err)
	}
	tr, err := Transpose(m)
	if err != nil {
		return 0, matrixErrorf(opAsymmetry, err)
	}
	diff, err := Sub(m, tr)
	if err != nil {
		return 0, matrixErrorf(opAsymmetry, err)
	}

	return maxAbs(diff.data), nil
}

// MulVec computes dst = M·x on the flat buffer (VecMultiplier for power iteration).
// Errors: ErrNilMatrix (nil vector), ErrDimensionMismatch.
func (m *Dense) MulVec(dst, x []float64) error {
	if err := ValidateVecLen(x, m.c); err != nil {
		return matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(dst, m.r); err != nil {
		return matrixErrorf(opMulVec, err)
	}
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		dst[i] = acc
	}

	return nil
}

// maxAbs returns max |data[k]|, used to make tolerances scale-aware.
func maxAbs(data []float64) float64 {
	var best float64
	for _, v := range data {
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi sweeps.
// Implementation:
//   - Stage 1: Validate symmetric square input (not nil, square, |A[i,j]-A[j,i]| ≤ tol·scale).
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and apply a Jacobi rotation.
//
// Inputs:
//   - m: symmetric Reader; n := m.Rows().
//   - tol: relative convergence threshold; the absolute target is tol·max(1, max|A|).
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, unsorted).
//   - *Dense: Q whose columns are eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry,
//     ErrMatrixEigenFailed (max off-diagonal ≥ target after maxIter).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(rotations · n²) for the classic pivot search, Space O(n²).
//     Practical only for small fixtures (n up to a few hundred); larger cases
//     belong to the gonum engines in impl_spectral.go.
//
// Notes:
//   - If |A[p,q]| ≤ target, the rotation is skipped to avoid numerical blow-ups.
func Eigen(m Reader, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a, err := denseCopyOf(m) // working copy; the input is never mutated
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	scale := math.Max(1, maxAbs(a.data))
	target := tol * scale
	if err = ValidateSymmetric(a, target); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := a.r
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0 // Q starts as identity
	}

	var (
		iter               int
		base               int
		p, r               int     // current pivot indices
		maxOff, off        float64 // current max |A[p,r]|; temporary
		app, arr, apr      float64 // A[p,p], A[r,r], A[p,r]
		aip, air, qip, qir float64
		newIP, newIR       float64
		theta, t, c, s     float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: Find pivot (p,r) maximizing |A[p,r]|
		maxOff = NormZero
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}

		// J.2: converged
		if maxOff <= target {
			break
		}

		// J.3: rotation parameters
		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: apply rotation to A, keeping it symmetric
		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			newIP = c*aip - s*air
			newIR = s*aip + c*air
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+r], a.data[r*n+i] = newIR, newIR
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		// J.5: accumulate rotation into Q
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	// Final convergence check.
	maxOff = NormZero
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			if off = math.Abs(a.data[base+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff > target {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
