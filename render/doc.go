// Package render formats Routh–Hurwitz results for human consumption.
//
// What:
//
//   - Table: the full Routh table as a bordered grid, one row per
//     power of s (labelled s^n … s^0), one column per table entry.
//   - Summary: polynomial, verdict, RHP pole count, first column and
//     any diagnostic notes as a short text block.
//
// Why:
//
//   - The engine in routh/ is deliberately print-free; everything a
//     terminal shows lives here, outside the core.
//
// Rendering uses lipgloss, so styling degrades cleanly to plain text
// on non-TTY outputs. Both functions are pure string builders; they
// never mutate the result they are given.
package render
