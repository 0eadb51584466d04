// SPDX-License-Identifier: MIT
// Package: cscgen/fixture
//
// format.go - the fixture text format.
//
// .in layout (one field per line, trailing spaces are part of the format):
//
//	<nnz>
//	<v_1> <v_2> ... <v_nnz>␠        values as %f (six decimals), each followed by a space
//	<r_1> <r_2> ... <r_nnz>␠        row indices, each followed by a space
//	<size+1>
//	<p_0> <p_1> ... <p_size>␠       column pointers, each followed by a space
//
// .out layout: one line with the eigenvalue rendered like a Python float.
//
// Readers tokenize on any whitespace, the same way the consuming solver reads
// its standard input.

package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/cscgen/matrix"
)

const (
	valueDecimals = 6
	pyFixedMinExp = -4 // Python repr switches to exponent notation below 1e-4
	pyFixedMaxExp = 16 // ... and at or above 1e16

	maxPrealloc = 1 << 16 // slice capacity reserved up front while reading
)

// FormatValue renders a stored matrix value with six fixed decimals.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', valueDecimals, 64)
}

// Quantize rounds v to the value a reader gets back from FormatValue.
// Generation applies it before solving, so the recorded eigenvalue belongs to
// the matrix as written.
func Quantize(v float64) float64 {
	q, err := strconv.ParseFloat(FormatValue(v), 64)
	if err != nil {
		return v
	}

	return q
}

// FormatEigenvalue renders v as the shortest round-trip decimal in Python's
// float repr style: "5.0", "0.0", "123.456", "1e+16", "1.5e-05".
func FormatEigenvalue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < pyFixedMinExp || exp >= pyFixedMaxExp) {
		return sci // Go's shortest 'e' form already matches Python: 1e+16, 1.5e-05
	}

	fixed := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(fixed, '.') {
		fixed += ".0"
	}

	return fixed
}

// WriteInput serializes m in the .in layout.
// Complexity: O(nnz + cols).
func WriteInput(w io.Writer, m *matrix.CSC) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	buf = strconv.AppendInt(buf[:0], int64(m.NNZ()), 10)
	buf = append(buf, '\n')
	bw.Write(buf)

	for _, v := range m.Values() {
		buf = strconv.AppendFloat(buf[:0], v, 'f', valueDecimals, 64)
		buf = append(buf, ' ')
		bw.Write(buf)
	}
	bw.WriteByte('\n')

	writeInts(bw, buf, m.RowIndices())

	buf = strconv.AppendInt(buf[:0], int64(len(m.ColPtr())), 10)
	buf = append(buf, '\n')
	bw.Write(buf)

	writeInts(bw, buf, m.ColPtr())

	// bufio.Writer keeps the first error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write input: %w", err)
	}

	return nil
}

// writeInts writes each integer followed by a space, then a newline.
func writeInts(bw *bufio.Writer, buf []byte, xs []int) {
	for _, x := range xs {
		buf = strconv.AppendInt(buf[:0], int64(x), 10)
		buf = append(buf, ' ')
		bw.Write(buf)
	}
	bw.WriteByte('\n')
}

// WriteOutput writes the eigenvalue line of a .out file.
func WriteOutput(w io.Writer, eigenvalue float64) error {
	if _, err := io.WriteString(w, FormatEigenvalue(eigenvalue)+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// tokenReader pulls whitespace-separated tokens and names the field on failure.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

func (t *tokenReader) next(field string) (string, error) {
	if t.sc.Scan() {
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", field, err)
	}

	return "", fmt.Errorf("%s: unexpected end of input: %w", field, ErrMalformedInput)
}

func (t *tokenReader) nextInt(field string) (int, error) {
	tok, err := t.next(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer: %w", field, tok, ErrMalformedInput)
	}

	return v, nil
}

func (t *tokenReader) nextFloat(field string) (float64, error) {
	tok, err := t.next(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number: %w", field, tok, ErrMalformedInput)
	}

	return v, nil
}

// ReadInput parses a .in stream into a validated square CSC.
//
// Errors:
//   - ErrMalformedInput for bad tokens, negative counts, missing or trailing data.
//   - ErrMalformedInput joined with matrix.ErrMalformedCSC / matrix.ErrNaNInf when
//     the arrays parse but do not form a canonical CSC.
func ReadInput(r io.Reader) (*matrix.CSC, error) {
	tr := newTokenReader(r)

	nnz, err := tr.nextInt("nnz")
	if err != nil {
		return nil, err
	}
	if nnz < 0 {
		return nil, fmt.Errorf("nnz=%d: %w", nnz, ErrMalformedInput)
	}

	// Counts come from the file; slices grow with the tokens actually present.
	var v float64
	var x int
	values := make([]float64, 0, min(nnz, maxPrealloc))
	for i := 0; i < nnz; i++ {
		if v, err = tr.nextFloat("value"); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	rows := make([]int, 0, min(nnz, maxPrealloc))
	for i := 0; i < nnz; i++ {
		if x, err = tr.nextInt("row index"); err != nil {
			return nil, err
		}
		rows = append(rows, x)
	}

	ptrCount, err := tr.nextInt("pointer count")
	if err != nil {
		return nil, err
	}
	if ptrCount < 2 {
		return nil, fmt.Errorf("pointer count=%d, want size+1 ≥ 2: %w", ptrCount, ErrMalformedInput)
	}
	colPtr := make([]int, 0, min(ptrCount, maxPrealloc))
	for i := 0; i < ptrCount; i++ {
		if x, err = tr.nextInt("column pointer"); err != nil {
			return nil, err
		}
		colPtr = append(colPtr, x)
	}

	if _, err = tr.next("trailer"); err == nil {
		return nil, fmt.Errorf("trailing data after column pointers: %w", ErrMalformedInput)
	} else if !errors.Is(err, ErrMalformedInput) {
		return nil, err
	}

	size := ptrCount - 1
	m, err := matrix.NewCSC(size, size, values, rows, colPtr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return m, nil
}

// ReadOutput parses the single eigenvalue of a .out stream.
func ReadOutput(r io.Reader) (float64, error) {
	tr := newTokenReader(r)
	v, err := tr.nextFloat("eigenvalue")
	if err != nil {
		return 0, err
	}
	if _, err = tr.next("trailer"); err == nil {
		return 0, fmt.Errorf("trailing data after eigenvalue: %w", ErrMalformedInput)
	} else if !errors.Is(err, ErrMalformedInput) {
		return 0, err
	}

	return v, nil
}
