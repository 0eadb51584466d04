// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaults pins the documented defaults of newBuilderConfig.
func TestDefaults(t *testing.T) {
	cfg := newBuilderConfig()
	require.Nil(t, cfg.rng)
	require.Equal(t, SizeExponential, cfg.sizePolicy)
	require.Equal(t, DensityInverse, cfg.densityPolicy)
	require.Equal(t, defaultFixedDensity, cfg.fixedDensity)
	require.Equal(t, 0, cfg.maxSize)
	require.NotNil(t, cfg.valueFn)
}

// TestRNGOptions verifies reproducibility with WithSeed and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithSeed(3), WithRand(r))
	require.Same(t, r, c.rng)
}

// TestSampleDistinct checks uniqueness and range of Floyd sampling.
func TestSampleDistinct(t *testing.T) {
	cfg := newBuilderConfig(WithSeed(8))
	for _, k := range []int{0, 1, 17, 64} {
		got := sampleDistinct(cfg, 64, k)
		require.Len(t, got, k)
		seen := make(map[int]bool, k)
		for _, v := range got {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 64)
			require.False(t, seen[v], "duplicate %d", v)
			seen[v] = true
		}
	}
}

// TestValueFns covers the value distributions with a seeded RNG.
func TestValueFns(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		v := UniformValueFn(-2, 3)(rng)
		require.GreaterOrEqual(t, v, -2.0)
		require.Less(t, v, 3.0)
	}
	require.Equal(t, 4.0, UniformValueFn(4, 4)(rng))

	// [0,1) consumes the RNG exactly like the default distribution
	a, b := rand.New(rand.NewSource(9)), rand.New(rand.NewSource(9))
	for i := 0; i < 10; i++ {
		require.Equal(t, UniformUnitValueFn(a), UniformValueFn(0, 1)(b))
	}
}
