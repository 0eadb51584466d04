// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cscgen/matrix"
)

const (
	casePrefix = "test"
	caseSep    = "_"

	// InputExt and OutputExt are the fixture file extensions.
	InputExt  = ".in"
	OutputExt = ".out"
)

// Case is one generated fixture: the matrix written to the .in file and the
// dominant eigenvalue magnitude written to the .out file.
type Case struct {
	SizeExp    int
	ScalarExp  int
	Size       int
	Density    float64
	Seed       int64
	Matrix     *matrix.CSC
	Eigenvalue float64
}

// Name returns "test{SizeExp}_{ScalarExp}".
func (c *Case) Name() string { return CaseName(c.SizeExp, c.ScalarExp) }

// Cell addresses one point of the parameter grid.
type Cell struct {
	SizeExp   int
	ScalarExp int
}

// Grid spans size exponents 0..SizeExps-1 and scalar exponents 0..ScalarExps-1.
type Grid struct {
	SizeExps   int
	ScalarExps int
}

// Cells lists the grid row by row: size exponent outer, scalar exponent inner.
func (g Grid) Cells() []Cell {
	if g.SizeExps <= 0 || g.ScalarExps <= 0 {
		return nil
	}
	out := make([]Cell, 0, g.SizeExps*g.ScalarExps)
	for s := 0; s < g.SizeExps; s++ {
		for k := 0; k < g.ScalarExps; k++ {
			out = append(out, Cell{SizeExp: s, ScalarExp: k})
		}
	}

	return out
}

// CaseName formats the base file name of a grid cell.
func CaseName(sizeExp, scalarExp int) string {
	return fmt.Sprintf("%s%d%s%d", casePrefix, sizeExp, caseSep, scalarExp)
}

// ParseCaseName is the inverse of CaseName. A trailing .in/.out is ignored.
func ParseCaseName(name string) (sizeExp, scalarExp int, err error) {
	base := strings.TrimSuffix(strings.TrimSuffix(name, InputExt), OutputExt)
	rest, ok := strings.CutPrefix(base, casePrefix)
	if !ok {
		return 0, 0, fmt.Errorf("case name %q: missing %q prefix: %w", name, casePrefix, ErrMalformedInput)
	}
	sStr, kStr, ok := strings.Cut(rest, caseSep)
	if !ok {
		return 0, 0, fmt.Errorf("case name %q: missing %q: %w", name, caseSep, ErrMalformedInput)
	}
	if sizeExp, err = strconv.Atoi(sStr); err != nil || sizeExp < 0 {
		return 0, 0, fmt.Errorf("case name %q: size exponent: %w", name, ErrMalformedInput)
	}
	if scalarExp, err = strconv.Atoi(kStr); err != nil || scalarExp < 0 {
		return 0, 0, fmt.Errorf("case name %q: scalar exponent: %w", name, ErrMalformedInput)
	}

	return sizeExp, scalarExp, nil
}
