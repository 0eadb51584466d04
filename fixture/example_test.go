package fixture_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/cscgen/fixture"
	"github.com/katalvlaran/cscgen/matrix"
)

// ExampleWriteInput writes [[0,1.5],[1.5,2]] in the .in layout; note the
// space after every value.
func ExampleWriteInput() {
	m, err := matrix.NewCSC(2, 2, []float64{1.5, 1.5, 2}, []int{1, 0, 1}, []int{0, 1, 3})
	if err != nil {
		fmt.Println(err)
		return
	}
	var buf bytes.Buffer
	if err = fixture.WriteInput(&buf, m); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%q\n", buf.String())
	// Output:
	// "3\n1.500000 1.500000 2.000000 \n1 0 1 \n3\n0 1 3 \n"
}

// ExampleFormatEigenvalue shows the .out rendering.
func ExampleFormatEigenvalue() {
	fmt.Println(fixture.FormatEigenvalue(5))
	fmt.Println(fixture.FormatEigenvalue(3.0000000000000004))
	fmt.Println(fixture.FormatEigenvalue(1e16))
	// Output:
	// 5.0
	// 3.0000000000000004
	// 1e+16
}
