// Package poly provides a dense real polynomial value type and the
// small calculus the stability engine needs.
//
// What:
//
//   - Poly stores coefficients highest power first: index 0 is the
//     leading coefficient, the last index the constant term.
//   - Degree, coefficient access by power, derivative, leading-zero
//     trimming, monic normalization, and s^k-form pretty printing.
//
// Why:
//
//   - Characteristic polynomials arrive as plain coefficient slices;
//     a thin value type keeps index conventions in one place.
//   - The Routh zero-row resolver reconstructs and differentiates
//     auxiliary polynomials; Derivative is the only calculus it needs.
//
// Semantics:
//
//   - All methods are pure: the receiver is never mutated, every
//     transformation returns a fresh slice.
//   - Derivative of a constant (or empty) polynomial is Poly{0}.
//   - TrimLeading returns nil when every coefficient is stripped.
//
// Complexity: every operation is O(degree), allocation at most one slice.
package poly
