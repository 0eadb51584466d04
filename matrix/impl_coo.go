// SPDX-License-Identifier: MIT

// Package matrix - COO (coordinate / triplet) staging storage.
//
// Purpose:
//   - Collect sampled nonzeros in arbitrary order while a random matrix is drawn.
//   - Provide the two structural operations the fixture pipeline needs before
//     compression: in-place scaling and symmetrization S = M + Mᵗ.
//   - Compress into canonical CSC (ToCSC): duplicates summed, exact zeros dropped,
//     rows ascending inside each column.
//
// Determinism:
//   - Entries keep insertion order until ToCSC; ToCSC sorts by (col,row) so the
//     compressed layout does not depend on insertion order.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

const (
	opCOOAppend        = "COO.Append"
	opCOOAddTranspose  = "COO.AddTranspose"
	opCOOToCSC         = "COO.ToCSC"
	cooInitialCapacity = 16
)

// COO is a rows×cols sparse matrix stored as an unordered triplet list.
// Duplicate coordinates are allowed and summed on compression.
type COO struct {
	r, c    int     // dimensions (>0)
	entries []entry // insertion-ordered triplets
}

// NewCOO allocates an empty rows×cols triplet matrix.
// Errors: ErrInvalidDimensions when rows<=0 or cols<=0.
func NewCOO(rows, cols int) (*COO, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &COO{r: rows, c: cols, entries: make([]entry, 0, cooInitialCapacity)}, nil
}

// Rows returns the row count.
func (m *COO) Rows() int { return m.r }

// Cols returns the column count.
func (m *COO) Cols() int { return m.c }

// Len returns the number of stored triplets (duplicates counted separately).
func (m *COO) Len() int { return len(m.entries) }

// Append stores (i, j, v). Bounds are checked and v must be finite.
// Errors: ErrOutOfRange, ErrNaNInf.
// Complexity: amortized O(1).
func (m *COO) Append(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("%s(%d,%d): %w", opCOOAppend, i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s(%d,%d): %w", opCOOAppend, i, j, ErrNaNInf)
	}
	m.entries = append(m.entries, entry{row: i, col: j, val: v})

	return nil
}

// At sums every triplet stored at (i, j). O(len) scan; meant for tests and
// diagnostics, not hot paths.
func (m *COO) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("COO.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	var sum float64
	for _, e := range m.entries {
		if e.row == i && e.col == j {
			sum += e.val
		}
	}

	return sum, nil
}

// Scale multiplies every stored value by alpha in place.
// Complexity: O(len).
func (m *COO) Scale(alpha float64) {
	for k := range m.entries {
		m.entries[k].val *= alpha
	}
}

// AddTranspose returns S = M + Mᵗ as a new COO holding 2*len triplets.
// Real symmetric matrices have real eigenvalues, which is what the fixtures rely on.
//
// Errors:
//   - ErrDimensionMismatch when M is not square.
//
// Complexity:
//   - Time O(len), Space O(len).
func (m *COO) AddTranspose() (*COO, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("%s: %w", opCOOAddTranspose, ErrDimensionMismatch)
	}
	out := &COO{r: m.r, c: m.c, entries: make([]entry, 0, 2*len(m.entries))}
	out.entries = append(out.entries, m.entries...)
	for _, e := range m.entries {
		// mirrored triplet; diagonal entries therefore double
		out.entries = append(out.entries, entry{row: e.col, col: e.row, val: e.val})
	}

	return out, nil
}

// ToCSC compresses the triplets into canonical CSC.
// Implementation:
//   - Stage 1: copy and sort triplets by (col asc, row asc).
//   - Stage 2: merge runs of equal coordinates by summation; drop exact zeros.
//   - Stage 3: count nonzeros per column and prefix-sum into ColPtr.
//
// Behavior highlights:
//   - Output satisfies ValidateCSC: ColPtr[0]==0, non-decreasing, ends at nnz,
//     rows strictly increasing inside each column.
//
// Complexity:
//   - Time O(len·log len), Space O(len + cols).
func (m *COO) ToCSC() (*CSC, error) {
	sorted := make([]entry, len(m.entries))
	copy(sorted, m.entries)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].col != sorted[b].col {
			return sorted[a].col < sorted[b].col
		}
		return sorted[a].row < sorted[b].row
	})

	values := make([]float64, 0, len(sorted))
	rowIdx := make([]int, 0, len(sorted))
	colPtr := make([]int, m.c+1)

	var k, next int
	var sum float64
	for k = 0; k < len(sorted); k = next {
		// sum the run of identical (row,col) coordinates starting at k
		sum = sorted[k].val
		for next = k + 1; next < len(sorted) &&
			sorted[next].row == sorted[k].row && sorted[next].col == sorted[k].col; next++ {
			sum += sorted[next].val
		}
		if sum == 0 {
			continue // explicit zeros are not stored
		}
		values = append(values, sum)
		rowIdx = append(rowIdx, sorted[k].row)
		colPtr[sorted[k].col+1]++ // count per column, shifted by one for the prefix sum
	}
	for j := 0; j < m.c; j++ {
		colPtr[j+1] += colPtr[j]
	}

	out, err := newCSCOwned(m.r, m.c, values, rowIdx, colPtr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCOOToCSC, err)
	}

	return out, nil
}
