// SPDX-License-Identifier: MIT
// Package matrix: numeric policy and solver knobs (functional options).
//
// Contract:
//   - Options are functional (type Option func(*Options)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs; kernels never panic.
//   - Defaults below are the single source of truth for zero-value behavior.
//
// AI-Hints:
//   - Fixture verification passes its symmetry tolerance through WithEpsilon.
//   - Generation and verification raise the Jacobi rotation cap with WithJacobi;
//     JacobiRotations gives a cap proportional to n².
//   - Seed power iteration (WithSeed) in tests to make start vectors reproducible.
package matrix

import "math/rand"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// (symmetry of reconstructed fixtures).
	DefaultEpsilon = 1e-9

	// DefaultJacobiTol is the off-diagonal convergence threshold for Jacobi sweeps.
	DefaultJacobiTol = 1e-12

	// DefaultJacobiMaxIter caps the number of Jacobi rotations.
	DefaultJacobiMaxIter = 100000

	// DefaultPowerThreshold is the per-component residual threshold of power iteration.
	// The accepted total residual is n*threshold.
	DefaultPowerThreshold = 1e-6

	// DefaultPowerAttempts is the number of random restarts of power iteration.
	DefaultPowerAttempts = 5

	// DefaultPowerRounds is the number of convergence checks per attempt.
	DefaultPowerRounds = 50

	// DefaultPowerInner is the number of normalized multiplications between checks.
	DefaultPowerInner = 20
)

// Options holds numeric policy and iteration knobs shared by kernels.
// It is resolved once by NewOptions and passed by value.
type Options struct {
	eps           float64    // symmetry tolerance
	jacobiTol     float64    // Jacobi off-diagonal threshold
	jacobiMaxIter int        // Jacobi rotation cap
	threshold     float64    // power-iteration residual threshold
	attempts      int        // power-iteration restarts
	rounds        int        // convergence checks per attempt
	inner         int        // multiplications between checks
	rng           *rand.Rand // start-vector source; nil → package default source
}

// Option customizes Options before a kernel runs.
type Option func(*Options)

// NewOptions resolves defaults and applies opts in order (last wins).
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	o := Options{
		eps:           DefaultEpsilon,
		jacobiTol:     DefaultJacobiTol,
		jacobiMaxIter: DefaultJacobiMaxIter,
		threshold:     DefaultPowerThreshold,
		attempts:      DefaultPowerAttempts,
		rounds:        DefaultPowerRounds,
		inner:         DefaultPowerInner,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Epsilon returns the resolved symmetry tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the symmetry tolerance. Panics on negative values.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic("matrix: WithEpsilon(eps<0)")
	}
	return func(o *Options) { o.eps = eps }
}

// JacobiRotations returns a rotation cap for an n×n Jacobi solve: 8·n², and
// never less than DefaultJacobiMaxIter.
func JacobiRotations(n int) int {
	return max(DefaultJacobiMaxIter, 8*n*n)
}

// WithJacobi sets the Jacobi threshold and rotation cap. Panics on tol<=0 or maxIter<=0.
func WithJacobi(tol float64, maxIter int) Option {
	if tol <= 0 || maxIter <= 0 {
		panic("matrix: WithJacobi(tol<=0 || maxIter<=0)")
	}
	return func(o *Options) { o.jacobiTol, o.jacobiMaxIter = tol, maxIter }
}

// WithThreshold sets the power-iteration residual threshold. Panics on t<=0.
func WithThreshold(t float64) Option {
	if t <= 0 {
		panic("matrix: WithThreshold(t<=0)")
	}
	return func(o *Options) { o.threshold = t }
}

// WithIterations sets power-iteration attempts, rounds and inner steps.
// Panics if any value is < 1.
func WithIterations(attempts, rounds, inner int) Option {
	if attempts < 1 || rounds < 1 || inner < 1 {
		panic("matrix: WithIterations(values<1)")
	}
	return func(o *Options) { o.attempts, o.rounds, o.inner = attempts, rounds, inner }
}

// WithRand provides the RNG for power-iteration start vectors. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("matrix: WithRand(nil)")
	}
	return func(o *Options) { o.rng = r }
}

// WithSeed seeds a fresh RNG for power-iteration start vectors.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}
