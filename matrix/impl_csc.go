// SPDX-License-Identifier: MIT

// Package matrix - CSC (compressed sparse column) storage.
//
// Purpose:
//   - Hold the fixture matrices exactly as they are serialized: Values, RowIndices, ColPtr.
//   - Provide the read paths the pipeline needs: At, MulVec (power iteration),
//     ToDense (dense eigensolvers), Transpose and sparse symmetry checks.
//
// Layout:
//   - Column j owns Values[ColPtr[j]:ColPtr[j+1]] and RowIndices[ColPtr[j]:ColPtr[j+1]].
//   - ColPtr has Cols()+1 entries, starts at 0, is non-decreasing and ends at NNZ().
//   - Row indices are strictly increasing inside each column (canonical form).
//
// AI-Hints:
//   - CSC is immutable once built; build through COO.ToCSC or NewCSC.
//   - Accessors return the backing slices; treat them as read-only.
//
// Complexity quicksheet:
//   - At: O(log nnz(col)); MulVec: O(nnz + rows); ToDense: O(r*c); Transpose: O(nnz + r + c).

package matrix

import (
	"fmt"
	"math"
	"sort"
)

const (
	opNewCSC     = "NewCSC"
	opCSCAt      = "CSC.At"
	opCSCMulVec  = "CSC.MulVec"
	opCSCToDense = "CSC.ToDense"
	opCSCSym     = "CSC.ValidateSymmetric"
	opCSCMap     = "CSC.MapValues"
)

// cscErrorf wraps err with a CSC operation tag, preserving the sentinel via %w.
func cscErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// CSC is a rows×cols sparse matrix in compressed-sparse-column layout.
type CSC struct {
	r, c   int       // dimensions (>0)
	values []float64 // nonzero values, column by column
	rowIdx []int     // row of each value (len == len(values))
	colPtr []int     // column boundaries (len == c+1)
}

var _ Reader = (*CSC)(nil)

// NewCSC validates and copies a CSC triple into a new matrix.
// Implementation:
//   - Stage 1: ValidateCSC(rows, cols, values, rowIdx, colPtr).
//   - Stage 2: copy the three slices so the caller keeps ownership of its buffers.
//
// Errors:
//   - ErrInvalidDimensions (rows<=0 or cols<=0).
//   - ErrMalformedCSC (pointer/index layout broken).
//   - ErrNaNInf (non-finite value).
//
// Complexity:
//   - Time O(nnz + cols), Space O(nnz + cols).
func NewCSC(rows, cols int, values []float64, rowIdx, colPtr []int) (*CSC, error) {
	if err := ValidateCSC(rows, cols, values, rowIdx, colPtr); err != nil {
		return nil, cscErrorf(opNewCSC, err)
	}
	v := make([]float64, len(values))
	copy(v, values)
	ri := make([]int, len(rowIdx))
	copy(ri, rowIdx)
	cp := make([]int, len(colPtr))
	copy(cp, colPtr)

	return &CSC{r: rows, c: cols, values: v, rowIdx: ri, colPtr: cp}, nil
}

// newCSCOwned validates and adopts the slices without copying.
func newCSCOwned(rows, cols int, values []float64, rowIdx, colPtr []int) (*CSC, error) {
	if err := ValidateCSC(rows, cols, values, rowIdx, colPtr); err != nil {
		return nil, cscErrorf(opNewCSC, err)
	}

	return &CSC{r: rows, c: cols, values: values, rowIdx: rowIdx, colPtr: colPtr}, nil
}

// Rows returns the row count.
func (m *CSC) Rows() int { return m.r }

// Cols returns the column count.
func (m *CSC) Cols() int { return m.c }

// NNZ returns the number of stored nonzeros.
func (m *CSC) NNZ() int { return len(m.values) }

// Values returns the nonzero values (backing slice, read-only).
func (m *CSC) Values() []float64 { return m.values }

// RowIndices returns the row index of each value (backing slice, read-only).
func (m *CSC) RowIndices() []int { return m.rowIdx }

// ColPtr returns the Cols()+1 column pointers (backing slice, read-only).
func (m *CSC) ColPtr() []int { return m.colPtr }

// At returns the element at (i, j); absent entries read as 0.
// Binary search over the column's sorted row indices.
// Errors: ErrOutOfRange.
func (m *CSC) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", opCSCAt, i, j, ErrOutOfRange)
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	k := lo + sort.SearchInts(m.rowIdx[lo:hi], i)
	if k < hi && m.rowIdx[k] == i {
		return m.values[k], nil
	}

	return 0, nil
}

// MulVec computes dst = M·x.
// The loop walks columns once, scattering x[j]*M[i,j] into dst[i].
//
// Errors:
//   - ErrDimensionMismatch when len(x) != Cols() or len(dst) != Rows().
//
// Complexity:
//   - Time O(nnz + rows), Space O(1).
func (m *CSC) MulVec(dst, x []float64) error {
	if len(x) != m.c || len(dst) != m.r {
		return cscErrorf(opCSCMulVec, ErrDimensionMismatch)
	}
	for i := range dst {
		dst[i] = 0
	}
	var j, k int
	var xj float64
	for j = 0; j < m.c; j++ {
		xj = x[j]
		if xj == 0 {
			continue // skip empty contributions
		}
		for k = m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			dst[m.rowIdx[k]] += m.values[k] * xj
		}
	}

	return nil
}

// ToDense expands the matrix into a new row-major Dense.
// Complexity: O(r*c) allocation + O(nnz) scatter.
func (m *CSC) ToDense() (*Dense, error) {
	d, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, cscErrorf(opCSCToDense, err)
	}
	var j, k int
	for j = 0; j < m.c; j++ {
		for k = m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			d.data[m.rowIdx[k]*m.c+j] = m.values[k]
		}
	}

	return d, nil
}

// Transpose returns Mᵗ in canonical CSC (counting sort by row).
// Complexity: O(nnz + r + c).
func (m *CSC) Transpose() *CSC {
	nnz := len(m.values)
	colPtr := make([]int, m.r+1)
	for _, i := range m.rowIdx {
		colPtr[i+1]++
	}
	for i := 0; i < m.r; i++ {
		colPtr[i+1] += colPtr[i]
	}
	next := make([]int, m.r)
	copy(next, colPtr[:m.r])

	values := make([]float64, nnz)
	rowIdx := make([]int, nnz)
	var j, k, dst int
	for j = 0; j < m.c; j++ { // ascending j keeps rows sorted in the output
		for k = m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			dst = next[m.rowIdx[k]]
			values[dst] = m.values[k]
			rowIdx[dst] = j
			next[m.rowIdx[k]]++
		}
	}

	return &CSC{r: m.c, c: m.r, values: values, rowIdx: rowIdx, colPtr: colPtr}
}

// ValidateSymmetric checks |M[i,j] - M[j,i]| <= eps for every stored entry
// without densifying: M is compared column-by-column against Mᵗ with a merge walk.
//
// Errors:
//   - ErrDimensionMismatch (non-square), ErrNaNInf (bad eps), ErrAsymmetry.
//
// Complexity:
//   - Time O(nnz + n), Space O(nnz + n) for the transpose.
func (m *CSC) ValidateSymmetric(eps float64) error {
	if m.r != m.c {
		return cscErrorf(opCSCSym, ErrDimensionMismatch)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return cscErrorf(opCSCSym, ErrNaNInf)
	}
	eps = math.Abs(eps)
	t := m.Transpose()

	var j, a, b, aEnd, bEnd int
	var av, bv float64
	for j = 0; j < m.c; j++ {
		a, aEnd = m.colPtr[j], m.colPtr[j+1]
		b, bEnd = t.colPtr[j], t.colPtr[j+1]
		for a < aEnd || b < bEnd {
			// merge the two sorted row lists; a missing side reads as zero
			switch {
			case b >= bEnd || (a < aEnd && m.rowIdx[a] < t.rowIdx[b]):
				av, bv = m.values[a], 0
				a++
			case a >= aEnd || t.rowIdx[b] < m.rowIdx[a]:
				av, bv = 0, t.values[b]
				b++
			default:
				av, bv = m.values[a], t.values[b]
				a++
				b++
			}
			if math.Abs(av-bv) > eps {
				return cscErrorf(opCSCSym, ErrAsymmetry)
			}
		}
	}

	return nil
}

// MapValues returns a new CSC holding fn(v) for every stored value v.
// Entries that map to exactly zero are dropped, so the result stays canonical.
// The pattern of m is otherwise preserved; m itself is not modified.
//
// Errors:
//   - ErrNaNInf when fn yields a non-finite value.
//
// Complexity:
//   - Time O(nnz + cols), Space O(nnz + cols).
func (m *CSC) MapValues(fn func(float64) float64) (*CSC, error) {
	values := make([]float64, 0, len(m.values))
	rowIdx := make([]int, 0, len(m.rowIdx))
	colPtr := make([]int, m.c+1)

	var j, k int
	var v float64
	for j = 0; j < m.c; j++ {
		for k = m.colPtr[j]; k < m.colPtr[j+1]; k++ {
			if v = fn(m.values[k]); v == 0 {
				continue
			}
			values = append(values, v)
			rowIdx = append(rowIdx, m.rowIdx[k])
		}
		colPtr[j+1] = len(values)
	}

	out, err := newCSCOwned(m.r, m.c, values, rowIdx, colPtr)
	if err != nil {
		return nil, cscErrorf(opCSCMap, err)
	}

	return out, nil
}
