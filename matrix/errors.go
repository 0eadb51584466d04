// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Sentinels are returned bare from validators and wrapped with an operation
// tag (matrixErrorf / cscErrorf) at the kernel boundary.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index/NaN -> structural (CSC layout, symmetry) -> numeric (convergence).

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Sub of different shapes or MulVec with a wrong vector length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrMalformedCSC signals a broken compressed-sparse-column layout:
	// wrong pointer count, decreasing pointers, pointer/value length disagreement,
	// or row indices outside [0,rows) or not strictly increasing inside a column.
	ErrMalformedCSC = errors.New("matrix: malformed CSC layout")

	// ErrMatrixEigenFailed indicates that a dense eigen routine failed to converge
	// or the underlying factorization reported failure.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNotConverged indicates that power iteration exhausted all attempts
	// without meeting the residual threshold.
	ErrNotConverged = errors.New("matrix: power iteration did not converge")

	// ErrUnknownEngine indicates an EigenEngine value outside the known set.
	ErrUnknownEngine = errors.New("matrix: unknown eigen engine")
)
