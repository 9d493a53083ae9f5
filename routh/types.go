// Package routh defines options, sentinel errors and the result value
// for the Routh–Hurwitz engine.
package routh

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hurwitz/poly"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultEpsilon replaces a ~0 first-column pivot before it is used
	// as a divisor. Small enough not to distort later magnitudes, large
	// enough to avoid division blow-up.
	DefaultEpsilon = 1e-6

	// DefaultZeroRowEpsilon is the tolerance under which a coefficient,
	// pivot or whole row is considered zero.
	DefaultZeroRowEpsilon = 1e-12

	// DefaultNormalizeLeading divides every coefficient by the leading
	// one before the table is built. A pure positive scale; it never
	// changes the sign-change count or the verdict.
	DefaultNormalizeLeading = true

	// signSubstitute stands in for ~0 first-column entries during sign
	// counting. Fixed, not data-dependent, so results stay deterministic.
	signSubstitute = 1e-15
)

// Sentinel errors for input validation. Every validation failure wraps
// ErrInvalidInput, so errors.Is(err, ErrInvalidInput) covers them all.
var (
	// ErrInvalidInput is the base error for rejected coefficient input.
	ErrInvalidInput = errors.New("routh: invalid input")

	// ErrNoCoefficients indicates an empty coefficient sequence.
	ErrNoCoefficients = fmt.Errorf("%w: coefficient sequence must be non-empty", ErrInvalidInput)

	// ErrAllZero indicates every coefficient lies within tolerance of
	// zero, including after leading-zero stripping.
	ErrAllZero = fmt.Errorf("%w: all coefficients are within tolerance of zero", ErrInvalidInput)
)

// Options configures a single Analyze call. The zero value is NOT the
// default configuration; use DefaultOptions. Passing nil to Analyze is
// equivalent to DefaultOptions().
//
// Non-positive Epsilon or ZeroRowEpsilon fall back to their defaults,
// so a partially filled Options never divides by zero.
type Options struct {
	// Epsilon substitutes a ~0 pivot in the working divisor row.
	Epsilon float64
	// ZeroRowEpsilon is the near-zero detection tolerance.
	ZeroRowEpsilon float64
	// NormalizeLeading divides the input through by its leading
	// coefficient before building the table.
	NormalizeLeading bool
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Epsilon:          DefaultEpsilon,
		ZeroRowEpsilon:   DefaultZeroRowEpsilon,
		NormalizeLeading: DefaultNormalizeLeading,
	}
}

// resolved returns o with non-positive tolerances replaced by defaults.
func (o Options) resolved() Options {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.ZeroRowEpsilon <= 0 {
		o.ZeroRowEpsilon = DefaultZeroRowEpsilon
	}

	return o
}

// Result aggregates everything one Analyze call produces. It is
// assembled once, never mutated afterwards, and owned by the caller.
type Result struct {
	// Order is the polynomial degree n after leading-zero stripping.
	Order int
	// Coefficients is the canonical input: stripped, and monic when
	// NormalizeLeading was on.
	Coefficients poly.Poly
	// Table holds the n+1 Routh rows, each of length floor(n/2)+1 with
	// trailing unused slots zero-filled.
	Table [][]float64
	// RowLabels names each table row "s^n" down to "s^0".
	RowLabels []string
	// FirstColumn is Table's leading column; it alone determines the
	// verdict.
	FirstColumn []float64
	// RHPPoles counts first-column sign changes, i.e. roots with
	// strictly positive real part.
	RHPPoles int
	// Stable is RHPPoles == 0.
	Stable bool
	// Notes records each pivot substitution or zero-row resolution.
	// Purely diagnostic; empty for well-behaved inputs.
	Notes []string
}
