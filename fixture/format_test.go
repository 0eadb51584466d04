// Package fixture_test covers the fixture text format, configuration,
// generation and verification.
package fixture_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/cscgen/fixture"
	"github.com/katalvlaran/cscgen/matrix"
	"github.com/stretchr/testify/require"
)

// mustCSC builds a CSC or fails the test.
func mustCSC(t *testing.T, n int, values []float64, rows, colPtr []int) *matrix.CSC {
	t.Helper()
	m, err := matrix.NewCSC(n, n, values, rows, colPtr)
	require.NoError(t, err)

	return m
}

// TestWriteInput_Layout pins the exact bytes of the .in format.
func TestWriteInput_Layout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    func(t *testing.T) *matrix.CSC
		want string
	}{
		{
			name: "1x1",
			m: func(t *testing.T) *matrix.CSC {
				return mustCSC(t, 1, []float64{5}, []int{0}, []int{0, 1})
			},
			want: "1\n5.000000 \n0 \n2\n0 1 \n",
		},
		{
			name: "zero 2x2",
			m: func(t *testing.T) *matrix.CSC {
				return mustCSC(t, 2, nil, nil, []int{0, 0, 0})
			},
			want: "0\n\n\n3\n0 0 0 \n",
		},
		{
			name: "symmetric 2x2",
			m: func(t *testing.T) *matrix.CSC {
				return mustCSC(t, 2, []float64{1.5, 1.5, 2}, []int{1, 0, 1}, []int{0, 1, 3})
			},
			want: "3\n1.500000 1.500000 2.000000 \n1 0 1 \n3\n0 1 3 \n",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, fixture.WriteInput(&buf, tc.m(t)))
			require.Equal(t, tc.want, buf.String())
		})
	}
}

// TestReadInput_RoundTrip reads back what WriteInput produced.
func TestReadInput_RoundTrip(t *testing.T) {
	src := mustCSC(t, 3,
		[]float64{0.25, 1.125, 1.125, 3, 0.5},
		[]int{0, 2, 1, 0, 2},
		[]int{0, 2, 3, 5})

	var buf bytes.Buffer
	require.NoError(t, fixture.WriteInput(&buf, src))

	got, err := fixture.ReadInput(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, got.Rows())
	require.Equal(t, src.Values(), got.Values())
	require.Equal(t, src.RowIndices(), got.RowIndices())
	require.Equal(t, src.ColPtr(), got.ColPtr())
}

// TestReadInput_AnyWhitespace accepts tokens split arbitrarily.
func TestReadInput_AnyWhitespace(t *testing.T) {
	got, err := fixture.ReadInput(strings.NewReader("1 5.0 0\n\n2 0\t1"))
	require.NoError(t, err)
	v, err := got.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}

// TestReadInput_Errors checks that every malformed stream is rejected.
func TestReadInput_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		extra error
	}{
		{"empty", "", nil},
		{"bad nnz", "x\n", nil},
		{"negative nnz", "-1\n", nil},
		{"short values", "2\n1.0 \n", nil},
		{"bad value", "1\nabc \n0 \n2\n0 1 \n", nil},
		{"pointer count too small", "0\n\n\n1\n0 \n", nil},
		{"trailing data", "1\n1.0 \n0 \n2\n0 1 \n9\n", nil},
		{"row out of range", "1\n1.0 \n5 \n2\n0 1 \n", matrix.ErrMalformedCSC},
		{"pointer mismatch", "1\n1.0 \n0 \n2\n0 0 \n", matrix.ErrMalformedCSC},
		{"non-finite value", "1\nNaN \n0 \n2\n0 1 \n", matrix.ErrNaNInf},
		{"pointer overshoot", "1\n1.0 \n0 \n3\n0 5 1 \n", matrix.ErrMalformedCSC},
		{"huge nnz", "999999999999999999\n", nil},
		{"huge nnz with data", "999999999999999999\n1.0 2.0 \n", nil},
		{"huge pointer count", "0\n\n\n999999999999999999\n0 0 \n", nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = fixture.ReadInput(strings.NewReader(tc.in))
			})
			require.ErrorIs(t, err, fixture.ErrMalformedInput)
			if tc.extra != nil {
				require.ErrorIs(t, err, tc.extra)
			}
		})
	}
}

// TestFormatEigenvalue checks the Python-repr style rendering.
func TestFormatEigenvalue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{5, "5.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{-2.5, "-2.5"},
		{123.456, "123.456"},
		{0.30000000000000004, "0.30000000000000004"},
		{0.0001, "0.0001"},
		{1.5e-5, "1.5e-05"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{2.5e20, "2.5e+20"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, fixture.FormatEigenvalue(tc.in))
		})
	}
}

// TestQuantize matches the six-decimal rendering.
func TestQuantize(t *testing.T) {
	require.Equal(t, 0.123457, fixture.Quantize(0.1234567))
	require.Equal(t, 2.0, fixture.Quantize(2.0000004))
	require.Equal(t, 0.0, fixture.Quantize(4e-7*0.5))
	require.Equal(t, "0.123457", fixture.FormatValue(0.1234567))
}

// TestReadOutput parses one value and rejects anything else.
func TestReadOutput(t *testing.T) {
	v, err := fixture.ReadOutput(strings.NewReader("5.0\n"))
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	var buf bytes.Buffer
	require.NoError(t, fixture.WriteOutput(&buf, 1e16))
	require.Equal(t, "1e+16\n", buf.String())
	v, err = fixture.ReadOutput(&buf)
	require.NoError(t, err)
	require.Equal(t, 1e16, v)

	_, err = fixture.ReadOutput(strings.NewReader(""))
	require.ErrorIs(t, err, fixture.ErrMalformedInput)
	_, err = fixture.ReadOutput(strings.NewReader("1.0 2.0"))
	require.ErrorIs(t, err, fixture.ErrMalformedInput)
	_, err = fixture.ReadOutput(strings.NewReader("five"))
	require.ErrorIs(t, err, fixture.ErrMalformedInput)
}

// TestCaseName covers naming and parsing of grid cells.
func TestCaseName(t *testing.T) {
	require.Equal(t, "test3_7", fixture.CaseName(3, 7))

	s, k, err := fixture.ParseCaseName("test9_0.in")
	require.NoError(t, err)
	require.Equal(t, 9, s)
	require.Equal(t, 0, k)

	s, k, err = fixture.ParseCaseName("test12_5.out")
	require.NoError(t, err)
	require.Equal(t, 12, s)
	require.Equal(t, 5, k)

	for _, bad := range []string{"case1_2.in", "test1.in", "test_2.in", "testa_b", "test-1_2"} {
		_, _, err = fixture.ParseCaseName(bad)
		require.ErrorIs(t, err, fixture.ErrMalformedInput, bad)
	}
}

// TestGrid_Cells checks row-major ordering.
func TestGrid_Cells(t *testing.T) {
	cells := fixture.Grid{SizeExps: 2, ScalarExps: 3}.Cells()
	require.Equal(t, []fixture.Cell{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}, cells)
	require.Empty(t, fixture.Grid{}.Cells())
}
