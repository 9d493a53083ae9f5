package poly_test

import (
	"fmt"

	"github.com/katalvlaran/hurwitz/poly"
)

// ExamplePoly_Derivative differentiates the auxiliary polynomial that
// arises in the classic Routh zero-row case.
func ExamplePoly_Derivative() {
	aux := poly.Poly{1, 0, 2, 0, 1} // s^4 + 2s^2 + 1
	fmt.Println(aux)
	fmt.Println(aux.Derivative())
	// Output:
	// s^4 + 2s^2 + 1
	// 4s^3 + 4s
}

// ExamplePoly_Normalize shows monic normalization of a scaled polynomial.
func ExamplePoly_Normalize() {
	p := poly.Poly{2, 4, 6, 8}
	fmt.Println(p.Normalize())
	// Output:
	// s^3 + 2s^2 + 3s + 4
}
