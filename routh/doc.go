// Package routh implements the Routh–Hurwitz stability criterion:
// given the real coefficients of a characteristic polynomial, it
// counts the roots in the right half of the complex plane without
// computing any root.
//
// What:
//
//   - Analyze builds the full Routh table, resolves the classical
//     numeric degeneracies, counts first-column sign changes and
//     returns an immutable Result (table, first column, RHP pole
//     count, verdict, diagnostic notes).
//   - Zero pivots are replaced by a small positive epsilon in the
//     working divisor; an all-zero row at an odd power of s is
//     replaced by the derivative of the auxiliary polynomial built
//     from the row two above it.
//
// Why:
//
//   - Control design: decide stability of a closed loop from its
//     characteristic polynomial alone.
//   - Parameter sweeps: the computation is pure and deterministic, so
//     thousands of candidate polynomials evaluate in parallel with no
//     coordination.
//
// Options:
//
//   - Options.Epsilon: pivot substitute when a divisor is ~0
//     (DefaultEpsilon).
//   - Options.ZeroRowEpsilon: near-zero tolerance for validation,
//     zero-row and pivot detection (DefaultZeroRowEpsilon).
//   - Options.NormalizeLeading: divide through by the leading
//     coefficient before building the table; verdict-preserving
//     (DefaultNormalizeLeading).
//
// Errors:
//
//   - ErrInvalidInput: base class for every validation failure.
//   - ErrNoCoefficients: empty coefficient sequence.
//   - ErrAllZero: every coefficient within tolerance of zero, or
//     leading-zero stripping consumed the whole sequence.
//
// Degenerate-but-valid inputs (zero pivot, zero row) are not errors:
// they complete normally and are recorded in Result.Notes.
//
// Convention: a polynomial whose zero-row case stems from purely
// imaginary root pairs still reports RHPPoles=0 and Stable=true; the
// classical tabular method does not flag marginal stability, and
// neither does this package.
//
// Complexity: O(n²) time, O(n²) memory for the table itself.
package routh
