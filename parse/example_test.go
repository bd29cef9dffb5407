package parse_test

import (
	"fmt"

	"github.com/katalvlaran/matcalc/parse"
)

func ExampleEquations() {
	sys, err := parse.Equations("2x + y = 3\nx + y = 2")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sys.Vars, sys.Augmented)
	// Output:
	// [x y] [[2 1 3] [1 1 2]]
}

func ExampleMatrix() {
	m, _ := parse.Matrix("2 1; 1 1")
	fmt.Println(m)

	_, err := parse.Matrix("1 2; 3")
	fmt.Println(err)
	// Output:
	// [[2 1] [1 1]]
	// line 2, col 2: row has 1 entries, want 2
}
