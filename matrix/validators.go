// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/symmetry/CSC-layout checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only; ValidateCSC runs O(nnz + cols).
//
// AI-Hints:
//  - Use ValidateSymmetric before spectral methods (Jacobi, EigenSym) to fail fast.
//  - Use ValidateCSC on any externally supplied triple (fixture files) before trusting it.

package matrix

import (
	"fmt"
	"math"
)

// zeroTol is the lower bound for tolerances; negative values are flipped.
const zeroTol = 0.0

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Reader) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Reader) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Reader) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MulVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Reader) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Complexity: O(1).
func ValidateSquareNonNil(m Reader) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Returns ErrNilMatrix/ErrDimensionMismatch on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation.
// Complexity: O(n^2) where n = Rows(A). Space: O(1).
// AI-Hints: for *CSC prefer (*CSC).ValidateSymmetric, which stays O(nnz).
func ValidateSymmetric(m Reader, tol float64) error {
	if m == nil {
		return validatorErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSymmetric", ErrDimensionMismatch)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	if tol < zeroTol {
		tol = -tol
	}

	n := m.Rows()
	if n <= 1 {
		return nil // trivially symmetric
	}

	// Dense fast-path: compare mirrored cells on the flat buffer.
	if d, ok := m.(*Dense); ok {
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if math.Abs(d.data[i*n+j]-d.data[j*n+i]) > tol {
					return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
				}
			}
		}
		return nil
	}

	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // scan only upper triangle
			aij, _ = m.At(i, j) // errors are not expected after shape validation
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateCSC checks a raw compressed-sparse-column triple.
// Implementation:
//   - Stage 1: rows>0, cols>0 (ErrInvalidDimensions).
//   - Stage 2: len(colPtr)==cols+1, colPtr[0]==0, non-decreasing, colPtr[cols]==len(values)==len(rowIdx).
//     Every pointer is checked before any row index is read.
//   - Stage 3: every row index in [0,rows) and strictly increasing inside its column.
//   - Stage 4: every value finite (ErrNaNInf).
//
// Errors:
//   - ErrInvalidDimensions, ErrMalformedCSC, ErrNaNInf.
//
// Complexity:
//   - Time O(nnz + cols), Space O(1).
func ValidateCSC(rows, cols int, values []float64, rowIdx, colPtr []int) error {
	const tag = "ValidateCSC"
	if rows <= 0 || cols <= 0 {
		return validatorErrorf(tag, ErrInvalidDimensions)
	}
	if len(colPtr) != cols+1 {
		return fmt.Errorf("%s: %d column pointers, want %d: %w", tag, len(colPtr), cols+1, ErrMalformedCSC)
	}
	if len(values) != len(rowIdx) {
		return fmt.Errorf("%s: %d values vs %d row indices: %w", tag, len(values), len(rowIdx), ErrMalformedCSC)
	}
	if colPtr[0] != 0 {
		return fmt.Errorf("%s: colPtr[0]=%d: %w", tag, colPtr[0], ErrMalformedCSC)
	}
	if colPtr[cols] != len(values) {
		return fmt.Errorf("%s: colPtr[%d]=%d, nnz=%d: %w", tag, cols, colPtr[cols], len(values), ErrMalformedCSC)
	}

	var j, k int
	// All pointers first: the row walk below indexes rowIdx up to colPtr[j+1].
	for j = 0; j < cols; j++ {
		if colPtr[j+1] < colPtr[j] || colPtr[j+1] > len(values) {
			return fmt.Errorf("%s: colPtr[%d]=%d not in [%d,%d]: %w",
				tag, j+1, colPtr[j+1], colPtr[j], len(values), ErrMalformedCSC)
		}
	}
	for j = 0; j < cols; j++ {
		for k = colPtr[j]; k < colPtr[j+1]; k++ {
			if rowIdx[k] < 0 || rowIdx[k] >= rows {
				return fmt.Errorf("%s: row %d out of [0,%d) in column %d: %w", tag, rowIdx[k], rows, j, ErrMalformedCSC)
			}
			if k > colPtr[j] && rowIdx[k] <= rowIdx[k-1] {
				return fmt.Errorf("%s: rows not increasing in column %d: %w", tag, j, ErrMalformedCSC)
			}
			if math.IsNaN(values[k]) || math.IsInf(values[k], 0) {
				return validatorErrorf(tag, ErrNaNInf)
			}
		}
	}

	return nil
}
