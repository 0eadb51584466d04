// SPDX-License-Identifier: MIT
// Package: cscgen/fixture
//
// generator.go - the fixture generator.
//
// Pipeline per grid cell (size exponent s, scalar exponent k):
//   1. seed   = CellSeed(base, s, k, pin)
//   2. size   ← size policy over s (builder.SampleSize)
//   3. d      ← density policy over size (builder.Density)
//   4. S      = 2^k·R + (2^k·R)ᵗ in CSC, R with round(d·size²) U[0,1) nonzeros
//   5. S      ← values rounded to the six decimals written to disk
//   6. λ      = max |Re λ_i(S)| via the configured dense engine
//   7. write test{s}_{k}.in and test{s}_{k}.out
//
// Cells share nothing but the read-only Generator, so they may run in
// parallel; Workers bounds the parallelism (1 = strictly sequential).

package fixture

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cscgen/builder"
	"github.com/katalvlaran/cscgen/matrix"
)

const dirPerm = 0o755

// Generator produces fixtures for every cell of a Config's grid.
type Generator struct {
	cfg     Config
	seed    int64
	size    builder.SizePolicy
	density builder.DensityPolicy
	engine  matrix.EigenEngine
	log     *slog.Logger
}

// NewGenerator validates cfg and resolves its names. A nil logger discards.
// A zero cfg.Seed is replaced by a clock-derived seed, reported by Seed().
func NewGenerator(cfg Config, log *slog.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg, seed: resolveSeed(cfg.Seed), log: log}
	if g.log == nil {
		g.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	// Validate already accepted these names.
	g.size, _ = builder.ParseSizePolicy(cfg.SizePolicy)
	g.density, _ = builder.ParseDensityPolicy(cfg.DensityPolicy)
	g.engine, _ = matrix.ParseEngine(cfg.Engine)

	return g, nil
}

// Seed returns the resolved base seed of the run.
func (g *Generator) Seed() int64 { return g.seed }

// Config returns the configuration the generator was built from.
func (g *Generator) Config() Config { return g.cfg }

// GenerateCell builds the case for one grid cell without touching the disk.
//
// Errors: builder and matrix sentinels, wrapped.
// Complexity: O(size³) for the dense eigen-decomposition.
func (g *Generator) GenerateCell(sizeExp, scalarExp int) (*Case, error) {
	seed := CellSeed(g.seed, sizeExp, scalarExp, g.cfg.PinDraws)
	rng := rand.New(rand.NewSource(seed))

	size, err := builder.SampleSize(sizeExp,
		builder.WithRand(rng),
		builder.WithSizePolicy(g.size),
		builder.WithMaxSize(g.cfg.MaxSize))
	if err != nil {
		return nil, err
	}
	density, err := builder.Density(size, builder.WithDensityPolicy(g.density, g.cfg.Density))
	if err != nil {
		return nil, err
	}

	sym, err := builder.SymmetricSparse(size, density, math.Ldexp(1, scalarExp),
		builder.WithRand(rng),
		builder.WithValueFn(builder.UniformValueFn(g.cfg.ValueMin, g.cfg.ValueMax)))
	if err != nil {
		return nil, err
	}
	m, err := sym.MapValues(Quantize)
	if err != nil {
		return nil, err
	}

	vals, err := matrix.Eigenvalues(m, g.engine, solverOptions(size)...)
	if err != nil {
		return nil, err
	}
	maxMag, minMag := matrix.Magnitudes(vals)

	c := &Case{
		SizeExp:    sizeExp,
		ScalarExp:  scalarExp,
		Size:       size,
		Density:    density,
		Seed:       seed,
		Matrix:     m,
		Eigenvalue: maxMag,
	}
	g.log.Debug("cell generated",
		"case", c.Name(), "size", size, "density", density, "nnz", m.NNZ(),
		"max_eig", maxMag, "min_eig", minMag, "seed", seed)

	return c, nil
}

// Run generates and writes every cell of the grid in row-major order.
// The first failure cancels the remaining cells and is returned as
// "generate test{s}_{k}: <cause>". Files written before the failure stay.
// Existing files are overwritten.
func (g *Generator) Run(ctx context.Context) ([]*Case, error) {
	if err := os.MkdirAll(g.cfg.OutDir, dirPerm); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	cells := g.cfg.Grid().Cells()
	g.log.Info("generation started",
		"seed", g.seed, "cells", len(cells), "out", g.cfg.OutDir,
		"size_policy", g.size, "density_policy", g.density, "engine", g.engine,
		"workers", g.cfg.Workers, "pin_draws", g.cfg.PinDraws)

	out := make([]*Case, len(cells))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)
	for i, cell := range cells {
		if gctx.Err() != nil {
			break // a cell failed or the caller cancelled; stop scheduling
		}
		i, cell := i, cell
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := g.GenerateCell(cell.SizeExp, cell.ScalarExp)
			if err == nil {
				err = WriteCase(g.cfg.OutDir, c)
			}
			if err != nil {
				return fmt.Errorf("generate %s: %w", CaseName(cell.SizeExp, cell.ScalarExp), err)
			}
			out[i] = c
			g.log.Info("fixture written", "case", c.Name(), "size", c.Size, "nnz", c.Matrix.NNZ(),
				"eigenvalue", c.Eigenvalue)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// WriteCase writes c to dir/test{s}_{k}.in and dir/test{s}_{k}.out.
func WriteCase(dir string, c *Case) error {
	base := filepath.Join(dir, c.Name())
	if err := writeFile(base+InputExt, func(f *os.File) error { return WriteInput(f, c.Matrix) }); err != nil {
		return err
	}

	return writeFile(base+OutputExt, func(f *os.File) error { return WriteOutput(f, c.Eigenvalue) })
}

// writeFile creates (or truncates) path and runs fill, closing on every path.
func writeFile(path string, fill func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
		}
	}()

	return fill(f)
}
