package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/textdiv/matrix"
)

// ExampleDense_SetSym fills the upper triangle of a distance matrix once
// and lets SetSym mirror every value.
func ExampleDense_SetSym() {
	m, _ := matrix.NewDense(3, 3)
	_ = m.SetSym(0, 1, 2)
	_ = m.SetSym(0, 2, 4)
	_ = m.SetSym(1, 2, 3)

	n, err := matrix.ValidateDistance(m)
	fmt.Println(n, err)
	fmt.Print(m)
	// Output:
	// 3 <nil>
	// [0, 2, 4]
	// [2, 0, 3]
	// [4, 3, 0]
}
