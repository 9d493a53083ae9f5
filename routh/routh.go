package routh

import "github.com/katalvlaran/hurwitz/poly"

// Analyze runs the Routh–Hurwitz criterion on a characteristic
// polynomial given as coefficients from the highest power down to the
// constant term. A nil opts is equivalent to DefaultOptions().
//
// Pipeline: normalize → seed rows → Routh recurrence (zero rows and
// zero pivots resolved per row) → sign-change count → assembly. The
// call is pure and synchronous: identical input and options yield a
// bit-identical Result, and independent calls share no state.
//
// Validation failures (empty input, all-zero input) return an error
// wrapping ErrInvalidInput and no partial result. Numeric degeneracies
// are not errors; they complete normally and are listed in
// Result.Notes.
//
// Example:
//
//	res, err := routh.Analyze([]float64{1, 2, 3, 4}, nil)
//	if err != nil { ... }
//	fmt.Println(res.Stable, res.RHPPoles) // true 0
func Analyze(coeffs []float64, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = opts.resolved()
	}

	canon, err := normalize(coeffs, o)
	if err != nil {
		return nil, err
	}

	b := newTableBuilder(canon, o)
	table := b.build()
	col := firstColumn(table)
	rhp := countSignChanges(col, o.ZeroRowEpsilon)

	return &Result{
		Order:        canon.Degree(),
		Coefficients: canon,
		Table:        table,
		RowLabels:    b.labels,
		FirstColumn:  col,
		RHPPoles:     rhp,
		Stable:       rhp == 0,
		Notes:        b.notes,
	}, nil
}

// normalize validates the raw coefficients and produces the canonical
// polynomial: leading near-zeros stripped, optionally made monic.
func normalize(coeffs []float64, o Options) (poly.Poly, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}
	// An all-zero sequence and a sequence that strips to nothing are the
	// same failure: no nonzero coefficient survives.
	p := poly.Poly(coeffs).TrimLeading(o.ZeroRowEpsilon)
	if p == nil {
		return nil, ErrAllZero
	}
	if o.NormalizeLeading {
		p = p.Normalize()
	}

	return p, nil
}
