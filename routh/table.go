package routh

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hurwitz/poly"
)

// tableBuilder accumulates the Routh table for one Analyze call. It is
// created, consumed and discarded within that call; no state escapes
// except through the assembled Result.
type tableBuilder struct {
	coeffs poly.Poly
	n, m   int // degree, columns per row
	opts   Options

	table  [][]float64
	labels []string
	notes  []string
}

func newTableBuilder(coeffs poly.Poly, opts Options) *tableBuilder {
	n := coeffs.Degree()

	return &tableBuilder{
		coeffs: coeffs,
		n:      n,
		m:      n/2 + 1,
		opts:   opts,
		labels: rowLabels(n),
	}
}

// rowLabels names the rows "s^n" down to "s^0".
func rowLabels(n int) []string {
	labels := make([]string, n+1)
	for k := n; k >= 0; k-- {
		labels[n-k] = fmt.Sprintf("s^%d", k)
	}

	return labels
}

// build lays out the two seed rows and derives the remaining n-1 rows
// via the Routh recurrence, resolving zero rows and zero pivots on the
// way. Returns exactly n+1 rows of m entries each.
func (b *tableBuilder) build() [][]float64 {
	b.table = make([][]float64, 0, b.n+1)

	// Seed rows: even offsets from the top, then odd offsets.
	b.table = append(b.table, polyToRow(b.coeffs, b.m))
	if b.n >= 1 {
		b.table = append(b.table, polyToRow(b.coeffs[1:], b.m))
	}

	for i := 2; i <= b.n; i++ {
		b.table = append(b.table, b.nextRow(i))
	}

	return b.table
}

// nextRow derives row i from rows i-1 and i-2.
func (b *tableBuilder) nextRow(i int) []float64 {
	prev, prev2 := b.table[i-1], b.table[i-2]
	tol := b.opts.ZeroRowEpsilon

	// A vanished row at an odd power of s signals roots symmetric about
	// the origin: replace it (committed) with the derivative of the
	// auxiliary polynomial from two rows up. A vanished row at an even
	// power is not the classical case and falls through to the pivot
	// substitution below.
	if poly.Poly(prev).IsZero(tol) && (b.n-(i-1))%2 == 1 {
		b.resolveZeroRow(i, prev, prev2)
	}

	// The divisor must not be ~0. Substitute epsilon in a working copy
	// only; the committed row keeps its true value.
	divisor := prev
	if math.Abs(divisor[0]) < tol {
		divisor = append([]float64(nil), prev...)
		divisor[0] = b.opts.Epsilon
		b.notes = append(b.notes, fmt.Sprintf(
			"row %s: zero pivot replaced by epsilon=%g", b.labels[i-1], b.opts.Epsilon))
	}

	// Standard cross-multiplication; the last column stays zero.
	row := make([]float64, b.m)
	for j := 0; j < b.m-1; j++ {
		row[j] = (divisor[0]*prev2[j+1] - prev2[0]*divisor[j+1]) / divisor[0]
	}

	return row
}

// resolveZeroRow overwrites the all-zero row i-1 in place with the
// derivative of the auxiliary polynomial reconstructed from row i-2.
// The auxiliary degree is the power associated with row i-2, n-(i-2).
func (b *tableBuilder) resolveZeroRow(i int, prev, prev2 []float64) {
	aux := rowToPoly(prev2, b.n-(i-2))
	copy(prev, polyToRow(aux.Derivative(), b.m))
	b.notes = append(b.notes, fmt.Sprintf(
		"row %s: all-zero row replaced by the derivative of the auxiliary polynomial %s",
		b.labels[i-1], aux))
}
