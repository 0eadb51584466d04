// SPDX-License-Identifier: MIT

// Package matrix: the shared Matrix interface and small domain types.
// Storage types (Dense, CSC, COO) live in their own impl_* files.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) for Dense; CSC.At is
// O(log nnz(col)) and CSC does not implement Set (it is immutable once built).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Reader is the read-only subset of Matrix satisfied by every storage kind,
// including the immutable CSC.
type Reader interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
}

// entry is a single (row, col, value) triplet. Using ints keeps the sort
// keys compact; entries are ordered column-major when compressed.
type entry struct {
	row int     // row index
	col int     // column index
	val float64 // stored value
}
