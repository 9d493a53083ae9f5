// Package hurwitz is an in-memory toolkit for classical stability
// analysis of linear systems — from polynomial primitives to the full
// Routh–Hurwitz tabular criterion.
//
// 🚀 What is hurwitz?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Polynomial primitives: dense real coefficients, derivative,
//		  normalization, pretty printing
//		• The Routh–Hurwitz engine: table construction, epsilon pivot
//		  handling, auxiliary-polynomial zero-row resolution,
//		  sign-change counting
//		• Rendering: human-readable stability tables and verdicts
//		• A CLI: analyze single polynomials or YAML batches
//
// ✨ Why choose hurwitz?
//
//   - Deterministic – no global state, bit-identical results per input
//   - Pure computation – the core performs no I/O and never blocks,
//     so bulk sweeps parallelize with zero coordination
//   - Rock-solid edge cases – zero pivots and zero rows are handled
//     the way the classical method prescribes, and every intervention
//     is recorded on the result
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under focused subpackages:
//
//	poly/   — dense polynomial value type and calculus helpers
//	routh/  — the stability-table engine (the heart of the library)
//	render/ — grid and verdict formatting for human consumption
//	cmd/    — the hurwitz command-line tool
//
// Quick example:
//
//	res, err := routh.Analyze([]float64{1, 2, 3, 4}, nil)
//	if err != nil { ... }
//	fmt.Println(res.Stable, res.RHPPoles) // true 0
//
// Dive into each package's doc.go for the full contract.
package hurwitz
