package routh

import "github.com/katalvlaran/hurwitz/poly"

// Routh rows interleave a polynomial's coefficients with stride 2:
// row[j] holds the coefficient 2j positions below the top power. The
// two helpers below convert between the row layout and a full dense
// polynomial. They are deliberately tiny and pure: seed-row
// construction and the zero-row resolver both rely on them.

// polyToRow packs p into a Routh row of m entries, taking every other
// coefficient starting at the leading one. Slots beyond p stay zero.
func polyToRow(p poly.Poly, m int) []float64 {
	row := make([]float64, m)
	for j := 0; j < m; j++ {
		if 2*j >= len(p) {
			break
		}
		row[j] = p[2*j]
	}

	return row
}

// rowToPoly expands a Routh row back into a full polynomial of the
// given degree: row[k] lands at power degree-2k, every other power is
// zero. Row entries beyond power 0 (zero-filled padding) are dropped.
func rowToPoly(row []float64, degree int) poly.Poly {
	p := make(poly.Poly, degree+1)
	for k, x := range row {
		if 2*k > degree {
			break
		}
		p[2*k] = x
	}

	return p
}
