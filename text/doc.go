// Package text measures and wraps text for page layout.
//
// # Measuring
//
// The [Measurer] turns strings into display lines constrained by a width
// in millimetres at a given font size in points:
//
//	m := text.NewMeasurer(font.Helvetica())
//	lines := m.Wrap(summary, 150, 10, font.Regular)
//	height := m.Height(len(lines), 10)
//
// Wrapping splits on whitespace only. There is no hyphenation: a single
// word wider than the available width is placed on a line of its own and
// left to overflow. [Measurer.Overflowing] reports such lines so callers
// can surface them as warnings.
//
// # Vertical Space
//
// [EstimateHeight] converts a line count to millimetres using
//
//	lineCount × fontSize × 0.3527 × lineHeightFactor
//
// with a line height factor of 1.6 unless configured otherwise.
//
// # Markup
//
// Report fields produced by language models sometimes contain HTML.
// [PlainText] strips tags, decodes entities and NFC-normalises the result
// before it reaches the measurer.
package text
