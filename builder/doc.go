// Package builder samples the random matrices behind sparse-eigenvalue
// fixtures. It follows the functional-options style used across cscgen:
// option constructors validate and panic on meaningless input, samplers
// return wrapped sentinel errors and never panic.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the RNG; every stochastic sampler requires one.
//     – WithValueFn:    distribution of nonzero values (default U[0,1)).
//   - Policies:
//     – SizePolicy:     SizeBounded [1, 2^(4+e)) or SizeExponential
//     [2^e, 2^(2e+1)), optionally capped with WithMaxSize.
//     – DensityPolicy:  DensityInverse (1/size) or DensityFixed.
//   - Samplers:
//     – SampleSize:     draw a dimension for a size exponent.
//     – Density:        nonzero fraction for a dimension.
//     – RandomSparse:   n×n COO with round(density·n²) distinct cells.
//     – SymmetricSparse: scale, symmetrize (R + Rᵗ) and compress to CSC.
//   - Value distributions (ValueFn): UniformUnitValueFn and UniformValueFn
//     (a degenerate [v, v] range yields the constant v).
//
// Determinism: for a fixed seed and option list, every sampler produces the
// same output. Sharing one *rand.Rand across SampleSize and RandomSparse
// (WithRand) chains the draws in call order.
package builder
