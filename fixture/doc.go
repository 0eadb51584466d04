// Package fixture generates and verifies sparse-eigenvalue test fixtures.
//
// A fixture is a pair of text files named after a grid cell (s, k):
//
//	test{s}_{k}.in   nnz, values, row indices, column pointers (CSC)
//	test{s}_{k}.out  max |Re λ| of the matrix in the .in file
//
// The matrix is 2^k·R + (2^k·R)ᵗ for a random sparse R whose size is drawn
// from the size exponent s. Values are written with six decimals and the
// reference eigenvalue is computed on exactly those values, so a reader that
// reconstructs the matrix from the .in file sees the recorded answer.
//
// Generator runs a Config over its grid; VerifyDir re-checks a directory of
// fixtures; PlotSpectrum renders an eigenvalue histogram for inspection.
package fixture
