package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matrixcalc/matrix"
)

// ExampleRightDivide shows A·B⁻¹ over row-major buffers.
func ExampleRightDivide() {
	a, _ := matrix.NewFromRowMajor(2, 2, []float64{1, 0, 0, 1})
	b, _ := matrix.NewFromRowMajor(2, 2, []float64{2, 0, 0, 2})

	c, _, err := matrix.RightDivide(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [0.5, 0]
	// [0, 0.5]
}

// ExampleFactorizeLU reports rank and invertibility of a singular matrix.
func ExampleFactorizeLU() {
	b, _ := matrix.NewFromRowMajor(2, 2, []float64{1, 2, 2, 4})
	f, _ := matrix.FactorizeLU(b)
	fmt.Println(f.Rank(), f.IsInvertible())

	// Output:
	// 1 false
}
