// SPDX-License-Identifier: MIT
package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := NewOptions()
	require.Equal(t, DefaultEpsilon, o.Epsilon())
	require.Equal(t, DefaultJacobiTol, o.jacobiTol)
	require.Equal(t, DefaultJacobiMaxIter, o.jacobiMaxIter)
	require.Equal(t, DefaultPowerThreshold, o.threshold)
	require.Equal(t, DefaultPowerAttempts, o.attempts)
	require.Equal(t, DefaultPowerRounds, o.rounds)
	require.Equal(t, DefaultPowerInner, o.inner)
	require.Nil(t, o.rng)
}

// TestNewOptions_LastWins ensures later options override earlier ones.
func TestNewOptions_LastWins(t *testing.T) {
	o := NewOptions(WithEpsilon(1e-3), WithEpsilon(1e-5), WithIterations(1, 2, 3), WithThreshold(1e-2))
	require.Equal(t, 1e-5, o.Epsilon())
	require.Equal(t, [3]int{1, 2, 3}, [3]int{o.attempts, o.rounds, o.inner})
	require.Equal(t, 1e-2, o.threshold)

	j := NewOptions(WithJacobi(1e-10, JacobiRotations(200)))
	require.Equal(t, 1e-10, j.jacobiTol)
	require.Equal(t, 8*200*200, j.jacobiMaxIter)
	require.Equal(t, DefaultJacobiMaxIter, JacobiRotations(3))

	a := NewOptions(WithSeed(5))
	b := NewOptions(WithSeed(5))
	require.Equal(t, a.rng.Float64(), b.rng.Float64())
}

// TestOptions_Panics verifies that option constructors reject meaningless input.
func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { WithEpsilon(-1) })
	require.Panics(t, func() { WithJacobi(0, 10) })
	require.Panics(t, func() { WithJacobi(1e-9, 0) })
	require.Panics(t, func() { WithThreshold(0) })
	require.Panics(t, func() { WithIterations(0, 1, 1) })
	require.Panics(t, func() { WithRand(nil) })
}
