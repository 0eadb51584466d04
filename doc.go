// Package cscgen builds test fixtures for sparse symmetric eigenvalue solvers.
//
// Each fixture is a random sparse matrix S = 2^k·R + (2^k·R)ᵗ stored in
// compressed-sparse-column form (test{s}_{k}.in) together with its reference
// answer max |Re λ(S)| (test{s}_{k}.out), for every size exponent s and scalar
// exponent k of a grid.
//
// Layout:
//
//	matrix/          Dense, COO and CSC storage; Jacobi, gonum and power-iteration engines
//	builder/         seeded random sparse sampling, size and density policies
//	fixture/         grid generation, the .in/.out codec, verification, spectrum plots
//	internal/logging slog handlers with file rotation
//	cmd/cscgen       the command-line front end (generate, verify, solve, plot)
//
// Typical use:
//
//	cscgen generate --seed 42 --out-dir testdata
//	cscgen verify testdata
package cscgen
