// SPDX-License-Identifier: MIT

// Package matrix - spectral engines for dominant-eigenvalue reference answers.
//
// Purpose:
//   - Compute the full real spectrum of a (symmetric) matrix with a dense
//     eigen-decomposition and reduce it to the dominant magnitude max|Re λ|.
//   - Offer interchangeable engines behind one enum so fixtures can be cross-checked:
//       EngineSymmetric → gonum mat.EigenSym (LAPACK dsyev path), the default.
//       EngineGeneral   → gonum mat.Eigen with EigenNone (general real matrices; real parts).
//       EngineJacobi    → in-house Jacobi sweeps (Eigen in impl_linear_algebra.go).
//       EnginePower     → sparse power iteration (PowerIteration in impl_power.go); dominant only.
//
// AI-Hints:
//   - Dense engines cost O(n³) time and O(n²) memory; cap fixture sizes accordingly.
//   - EnginePower never densifies a *CSC and is the algorithm the fixture consumer runs.

package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const (
	opEigenvalues = "Eigenvalues"
	opDominant    = "DominantEigenvalue"
)

// EigenEngine selects the algorithm used to obtain eigenvalues.
type EigenEngine int

const (
	// EngineSymmetric uses gonum's symmetric eigensolver. Requires symmetric input.
	EngineSymmetric EigenEngine = iota
	// EngineGeneral uses gonum's general eigensolver and keeps real parts.
	EngineGeneral
	// EngineJacobi uses the in-house Jacobi rotation solver. Requires symmetric input.
	EngineJacobi
	// EnginePower uses power iteration; yields the dominant magnitude only.
	EnginePower
)

var engineNames = [...]string{
	EngineSymmetric: "symmetric",
	EngineGeneral:   "general",
	EngineJacobi:    "jacobi",
	EnginePower:     "power",
}

// String returns the lowercase engine name used by configs and flags.
func (e EigenEngine) String() string {
	if e < 0 || int(e) >= len(engineNames) {
		return fmt.Sprintf("EigenEngine(%d)", int(e))
	}
	return engineNames[e]
}

// ParseEngine maps a name ("symmetric", "general", "jacobi", "power") to an engine.
// Matching is case-insensitive. Errors: ErrUnknownEngine.
func ParseEngine(name string) (EigenEngine, error) {
	for i, n := range engineNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return EigenEngine(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownEngine)
}

// Eigenvalues returns the real parts of all eigenvalues of the square matrix m.
// Implementation:
//   - Stage 1: validate square, densify (copy; m is never mutated).
//   - Stage 2: dispatch to the engine; symmetric engines validate symmetry within
//     eps·max(1, max|A|) first.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry (symmetric engines),
//     ErrMatrixEigenFailed (factorization failure), ErrUnknownEngine (incl. EnginePower).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Eigenvalues(m Reader, engine EigenEngine, opts ...Option) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	o := NewOptions(opts...)
	d, err := denseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	n := d.r

	switch engine {
	case EngineSymmetric:
		if err = ValidateSymmetric(d, o.eps*math.Max(1, maxAbs(d.data))); err != nil {
			return nil, matrixErrorf(opEigenvalues, err)
		}
		// SymDense reads the upper triangle of the row-major buffer.
		var es mat.EigenSym
		if ok := es.Factorize(mat.NewSymDense(n, d.data), false); !ok {
			return nil, matrixErrorf(opEigenvalues, ErrMatrixEigenFailed)
		}
		return es.Values(nil), nil

	case EngineGeneral:
		var eg mat.Eigen
		if ok := eg.Factorize(mat.NewDense(n, n, d.data), mat.EigenNone); !ok {
			return nil, matrixErrorf(opEigenvalues, ErrMatrixEigenFailed)
		}
		cvals := eg.Values(nil)
		out := make([]float64, len(cvals))
		for i, v := range cvals {
			out[i] = real(v)
		}
		return out, nil

	case EngineJacobi:
		vals, _, err := Eigen(d, o.jacobiTol, o.jacobiMaxIter)
		if err != nil {
			return nil, matrixErrorf(opEigenvalues, err)
		}
		return vals, nil
	}

	return nil, matrixErrorf(opEigenvalues, fmt.Errorf("%s: %w", engine, ErrUnknownEngine))
}

// Magnitudes reduces a spectrum to (max|λ|, min|λ|). An empty slice yields (0, 0).
// Complexity: O(len).
func Magnitudes(vals []float64) (maxMag, minMag float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	minMag = math.Inf(1)
	for _, v := range vals {
		a := math.Abs(v)
		if a > maxMag {
			maxMag = a
		}
		if a < minMag {
			minMag = a
		}
	}

	return maxMag, minMag
}

// DominantEigenvalue returns max|Re λ| of m using the selected engine.
// EnginePower runs PowerIteration directly on m when it can multiply vectors
// (*CSC, *Dense); any other Reader is densified first.
//
// Errors:
//   - see Eigenvalues and PowerIteration.
func DominantEigenvalue(m Reader, engine EigenEngine, opts ...Option) (float64, error) {
	if engine == EnginePower {
		if err := ValidateSquareNonNil(m); err != nil {
			return 0, matrixErrorf(opDominant, err)
		}
		vm, ok := m.(VecMultiplier)
		if !ok {
			d, err := denseCopyOf(m)
			if err != nil {
				return 0, matrixErrorf(opDominant, err)
			}
			vm = d
		}
		return PowerIteration(vm, opts...)
	}

	vals, err := Eigenvalues(m, engine, opts...)
	if err != nil {
		return 0, matrixErrorf(opDominant, err)
	}
	maxMag, _ := Magnitudes(vals)

	return maxMag, nil
}
