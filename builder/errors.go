// SPDX-License-Identifier: MIT
// Package: cscgen/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` via builderErrorf.
//   • Samplers MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that a dimension parameter (n, size cap) is smaller
// than the allowed minimum.
// Usage: if errors.Is(err, ErrTooSmall) { /* report invalid size */ }.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a density value is outside the closed
// interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic sampler requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates a size exponent outside the supported range, i.e. one
// whose sampling interval would overflow an int.
var ErrBadSize = errors.New("builder: invalid size exponent")

// ErrUnknownPolicy indicates an unrecognized size or density policy name.
var ErrUnknownPolicy = errors.New("builder: unknown policy")

// builderErrorf wraps err with the given method context:
// "<Method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, err)
}

// --- Implementation Notes ----------------------------------------------------
//
// Priority (tie-break guidance when multiple validations fail):
//    • ErrTooSmall / ErrBadSize - size/domain checks first.
//    • ErrInvalidProbability    - then density ranges.
//    • ErrNeedRandSource        - then RNG presence for stochastic samplers.
//
// Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error strings.
