package poly

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// printTol hides coefficients that are zero up to floating noise when
// rendering a polynomial as a string.
const printTol = 1e-10

// Poly is a dense real polynomial, coefficients highest power first.
// Poly{1, 2, 3, 4} represents s³ + 2s² + 3s + 4.
type Poly []float64

// Degree returns the nominal degree, len(p)-1. Empty polynomials have
// degree -1. Leading zeros are not inspected; call TrimLeading first
// when the true degree matters.
func (p Poly) Degree() int {
	return len(p) - 1
}

// At returns the coefficient of s^power, or 0 when the power lies
// outside the stored range.
func (p Poly) At(power int) float64 {
	idx := p.Degree() - power
	if idx < 0 || idx >= len(p) {
		return 0
	}

	return p[idx]
}

// Clone returns an independent copy of p.
func (p Poly) Clone() Poly {
	if p == nil {
		return nil
	}
	out := make(Poly, len(p))
	copy(out, p)

	return out
}

// IsZero reports whether every coefficient lies within tol of zero.
// The empty polynomial is zero.
func (p Poly) IsZero(tol float64) bool {
	for _, c := range p {
		if math.Abs(c) >= tol {
			return false
		}
	}

	return true
}

// TrimLeading strips leading coefficients with |c| < tol and returns
// the remainder as a fresh slice. Returns nil when everything is
// stripped.
func (p Poly) TrimLeading(tol float64) Poly {
	i := 0
	for i < len(p) && math.Abs(p[i]) < tol {
		i++
	}
	if i == len(p) {
		return nil
	}
	out := make(Poly, len(p)-i)
	copy(out, p[i:])

	return out
}

// Normalize divides every coefficient by the leading one, producing a
// monic polynomial. Scaling by a positive constant never changes the
// sign pattern of a Routh first column, so this is verdict-preserving.
// A zero leading coefficient (or empty input) is returned unchanged.
func (p Poly) Normalize() Poly {
	if len(p) == 0 || p[0] == 0 {
		return p.Clone()
	}
	out := p.Clone()
	floats.Scale(1/out[0], out)

	return out
}

// Derivative returns dp/ds by the standard power rule. Constants
// differentiate to Poly{0}.
func (p Poly) Derivative() Poly {
	n := p.Degree()
	if n <= 0 {
		return Poly{0}
	}
	out := make(Poly, n)
	for i := 0; i < n; i++ {
		out[i] = p[i] * float64(n-i)
	}

	return out
}

// String renders p in s^k form, e.g. "s^3 + 2s^2 + 3s + 4".
// Coefficients within printTol of zero are skipped; the all-zero
// polynomial renders as "0".
func (p Poly) String() string {
	n := p.Degree()
	var b strings.Builder
	for i, c := range p {
		if math.Abs(c) < printTol {
			continue
		}
		power := n - i
		neg := c < 0
		abs := math.Abs(c)
		if b.Len() == 0 {
			if neg {
				b.WriteString("-")
			}
		} else {
			if neg {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		}
		switch {
		case power == 0:
			fmt.Fprintf(&b, "%g", abs)
		case abs == 1 && power == 1:
			b.WriteString("s")
		case abs == 1:
			fmt.Fprintf(&b, "s^%d", power)
		case power == 1:
			fmt.Fprintf(&b, "%gs", abs)
		default:
			fmt.Fprintf(&b, "%gs^%d", abs, power)
		}
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}
