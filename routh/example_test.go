package routh_test

import (
	"fmt"

	"github.com/katalvlaran/hurwitz/routh"
)

// ExampleAnalyze runs the criterion on a stable closed-loop
// characteristic polynomial, s^3 + 2s^2 + 3s + 4.
func ExampleAnalyze() {
	res, err := routh.Analyze([]float64{1, 2, 3, 4}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("order=%d stable=%v rhp=%d\n", res.Order, res.Stable, res.RHPPoles)
	fmt.Println("first column:", res.FirstColumn)
	// Output:
	// order=3 stable=true rhp=0
	// first column: [1 2 1 4]
}

// ExampleAnalyze_unstable counts the right-half-plane poles of
// s^2 - 2s + 2 from the first-column sign changes.
func ExampleAnalyze_unstable() {
	res, _ := routh.Analyze([]float64{1, -2, 2}, nil)
	fmt.Printf("stable=%v rhp=%d\n", res.Stable, res.RHPPoles)
	// Output:
	// stable=false rhp=2
}

// ExampleAnalyze_zeroRow shows the auxiliary-polynomial path for
// s^4 + 2s^2 + 1, whose s^3 row vanishes.
func ExampleAnalyze_zeroRow() {
	res, _ := routh.Analyze([]float64{1, 0, 2, 0, 1}, nil)
	fmt.Printf("stable=%v rhp=%d\n", res.Stable, res.RHPPoles)
	fmt.Println(res.Notes[0])
	// Output:
	// stable=true rhp=0
	// row s^3: all-zero row replaced by the derivative of the auxiliary polynomial s^4 + 2s^2 + 1
}
