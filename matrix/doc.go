// Package matrix provides the numeric core of cscgen: dense and sparse
// matrix storage plus the spectral engines that produce reference answers
// for sparse-eigenvalue fixtures.
//
// The matrix package provides:
//
//   - Dense: row-major float64 storage with safe At/Set and a NaN/Inf guard.
//   - COO: an unordered triplet list used while a random matrix is sampled,
//     with in-place scaling and symmetrization (AddTranspose).
//   - CSC: canonical compressed-sparse-column storage, the on-disk layout of
//     fixtures, with MulVec, Transpose, ToDense and an O(nnz) symmetry check.
//   - Kernels: Sub, Transpose, Asymmetry and the Jacobi solver Eigen.
//   - Spectral engines: gonum EigenSym / Eigen, Jacobi, and power iteration,
//     selected by EigenEngine and reduced by DominantEigenvalue to max|Re λ|.
//
// All user-triggered failures are reported as sentinel errors (errors.go)
// wrapped with an operation tag; branch on them with errors.Is.
package matrix
