// SPDX-License-Identifier: MIT
// Package: cscgen/fixture
//
// verify.go - checks fixtures already on disk.
//
// For every .in/.out pair:
//   - the .in file parses into a canonical CSC (nnz == len(values) == len(rows),
//     size+1 non-decreasing column pointers from 0 to nnz);
//   - the reconstructed matrix is symmetric within SymmetryTol;
//   - the recorded eigenvalue matches max|Re λ| recomputed with Engine;
//   - optionally, power iteration (the consumer's algorithm) agrees as well.

package fixture

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cscgen/matrix"
)

// Verification defaults.
const (
	DefaultTolerance      = 1e-6
	DefaultSymmetryTol    = 1e-9
	DefaultPowerTolerance = 1e-3
	DefaultPowerSeed      = 1
)

// VerifyOptions tunes Verify and VerifyDir.
type VerifyOptions struct {
	Engine         matrix.EigenEngine
	Tolerance      float64
	Mode           ToleranceMode
	SymmetryTol    float64
	Power          bool
	PowerTolerance float64
	PowerSeed      int64
	Workers        int
}

// DefaultVerifyOptions returns symmetric-engine, relative 1e-6 checking
// without the power-iteration cross-check.
func DefaultVerifyOptions() VerifyOptions {
	return VerifyOptions{
		Engine:         matrix.EngineSymmetric,
		Tolerance:      DefaultTolerance,
		Mode:           ToleranceRelative,
		SymmetryTol:    DefaultSymmetryTol,
		PowerTolerance: DefaultPowerTolerance,
		PowerSeed:      DefaultPowerSeed,
		Workers:        1,
	}
}

// Report is the outcome of verifying one fixture.
type Report struct {
	Name     string
	Size     int
	NNZ      int
	Expected float64 // recorded in .out
	Actual   float64 // recomputed
	RelErr   float64
	Err      error // structural, symmetry, solver or mismatch failure

	// Power-iteration cross-check; Power is NaN when not run. A non-converging
	// power iteration is reported here but does not fail the fixture: matrices
	// with a ±λ pair defeat it by construction.
	Power    float64
	PowerErr error
}

// OK reports whether the fixture passed.
func (r Report) OK() bool { return r.Err == nil }

// Verify checks the fixture pair inPath/outPath.
func Verify(inPath, outPath string, opts VerifyOptions) Report {
	name := trimExt(filepath.Base(inPath))
	r := Report{Name: name, Power: math.NaN()}

	m, err := readInputFile(inPath)
	if err != nil {
		r.Err = err
		return r
	}
	expected, err := readOutputFile(outPath)
	if err != nil {
		r.Err = err
		return r
	}

	return VerifyCase(name, m, expected, opts)
}

// VerifyCase checks an in-memory matrix against a recorded eigenvalue.
func VerifyCase(name string, m *matrix.CSC, expected float64, opts VerifyOptions) Report {
	r := Report{Name: name, Size: m.Rows(), NNZ: m.NNZ(), Expected: expected, Power: math.NaN()}

	if err := m.ValidateSymmetric(opts.SymmetryTol); err != nil {
		r.Err = err
		if d, aerr := matrix.Asymmetry(m); aerr == nil {
			r.Err = fmt.Errorf("%s: max |A[i,j]-A[j,i]| = %.3g > %g: %w", name, d, math.Abs(opts.SymmetryTol), err)
		}
		return r
	}

	actual, err := matrix.DominantEigenvalue(m, opts.Engine, solverOptions(m.Rows(),
		matrix.WithEpsilon(math.Abs(opts.SymmetryTol)),
		matrix.WithSeed(opts.PowerSeed))...)
	if err != nil {
		r.Err = err
		return r
	}
	r.Actual = actual
	r.RelErr = relativeError(expected, actual)
	if !floatsEqual(expected, actual, opts.Tolerance, opts.Mode) {
		r.Err = fmt.Errorf("%s: recorded %s, recomputed %s (%s error %.3g > %g): %w",
			name, FormatEigenvalue(expected), FormatEigenvalue(actual), modeOrDefault(opts.Mode),
			r.RelErr, opts.Tolerance, ErrMismatch)
		return r
	}

	if opts.Power {
		p, err := matrix.PowerIteration(m, matrix.WithSeed(opts.PowerSeed))
		switch {
		case err != nil:
			r.PowerErr = err
		case !floatsEqual(expected, p, opts.PowerTolerance, ToleranceRelative):
			r.Power = p
			r.PowerErr = fmt.Errorf("%s: power iteration %s vs recorded %s: %w",
				name, FormatEigenvalue(p), FormatEigenvalue(expected), ErrMismatch)
		default:
			r.Power = p
		}
	}

	return r
}

// VerifyDir verifies every test*_*.in file in dir with its .out partner, in
// grid order. Reports are returned even when some fixtures fail; the error
// then wraps ErrMismatch and counts the failures.
func VerifyDir(ctx context.Context, dir string, opts VerifyOptions) ([]Report, error) {
	paths, err := filepath.Glob(filepath.Join(dir, casePrefix+"*"+caseSep+"*"+InputExt))
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	type entry struct {
		path string
		s, k int
	}
	entries := make([]entry, 0, len(paths))
	for _, p := range paths {
		s, k, perr := ParseCaseName(filepath.Base(p))
		if perr != nil {
			continue // not a fixture name, e.g. test_notes.in
		}
		entries = append(entries, entry{path: p, s: s, k: k})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoFixtures)
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].s != entries[b].s {
			return entries[a].s < entries[b].s
		}
		return entries[a].k < entries[b].k
	})

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	reports := make([]Report, len(entries))
	var failed atomic.Int64
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, e := range entries {
		i, e := i, e
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = Verify(e.path, trimExt(e.path)+OutputExt, opts)
			if !reports[i].OK() {
				failed.Add(1)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if n := failed.Load(); n > 0 {
		return reports, fmt.Errorf("%d of %d fixtures failed: %w", n, len(reports), ErrMismatch)
	}

	return reports, nil
}

// solverOptions sizes the Jacobi rotation cap for an n×n solve and appends
// extra. Engines other than jacobi ignore the cap.
func solverOptions(n int, extra ...matrix.Option) []matrix.Option {
	return append([]matrix.Option{
		matrix.WithJacobi(matrix.DefaultJacobiTol, matrix.JacobiRotations(n)),
	}, extra...)
}

func readInputFile(path string) (*matrix.CSC, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	m, err := ReadInput(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return m, nil
}

func readOutputFile(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open output: %w", err)
	}
	defer f.Close()

	v, err := ReadOutput(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return v, nil
}

func trimExt(path string) string {
	return path[:len(path)-len(filepath.Ext(path))]
}

func modeOrDefault(m ToleranceMode) ToleranceMode {
	if m == "" {
		return ToleranceRelative
	}
	return m
}
