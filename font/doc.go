// Package font provides glyph width metrics for text measurement.
//
// Layout decisions (line wrapping, badge widths, right alignment) need the
// advance width of every character before anything is drawn. This package
// answers that question without touching an output document.
//
// # Metrics
//
// The [Metrics] interface reports advances in 1000ths of an em:
//
//	m := font.Helvetica()
//	w := font.StringWidth(m, "Hello", font.Bold) // font units
//
// Two implementations are provided:
//
//   - [Standard] - built-in width tables for Helvetica and Courier
//   - [TrueType] - advances read from an sfnt font program
//
// # East Asian Text
//
// Hangul and CJK ideographs are not part of the standard tables. Runes that
// Unicode classifies as East Asian wide or full-width are measured as one
// em; combining marks are measured as zero. [IsWide] exposes the check.
package font
