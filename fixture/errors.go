// SPDX-License-Identifier: MIT
// Package: cscgen/fixture
//
// errors.go - sentinel errors for fixture generation, codec and verification.
//
// Error policy:
//   • Sentinels only; callers branch with errors.Is.
//   • Codec errors wrap ErrMalformedInput together with the underlying matrix
//     sentinel (e.g. matrix.ErrMalformedCSC), so both match.

package fixture

import "errors"

var (
	// ErrMalformedInput indicates a .in or .out file that does not follow the
	// fixture text format (bad token, wrong count, broken CSC layout).
	ErrMalformedInput = errors.New("fixture: malformed input")

	// ErrMismatch indicates a recorded eigenvalue that disagrees with the
	// recomputed one beyond tolerance.
	ErrMismatch = errors.New("fixture: eigenvalue mismatch")

	// ErrInvalidConfig indicates a run configuration rejected by the schema or
	// by semantic checks.
	ErrInvalidConfig = errors.New("fixture: invalid config")

	// ErrNoFixtures indicates a directory without any test*.in files.
	ErrNoFixtures = errors.New("fixture: no fixtures found")

	// ErrEmptySpectrum indicates a matrix with no eigenvalues to plot.
	ErrEmptySpectrum = errors.New("fixture: empty spectrum")
)
