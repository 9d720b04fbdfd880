package text

import (
	"strings"

	"github.com/tsawler/folio/font"
)

// PtToMM converts a font size in points to millimetres.
const PtToMM = 0.3527

// DefaultLineHeightFactor is the line spacing multiplier used throughout
// the document.
const DefaultLineHeightFactor = 1.6

// Measurer wraps text into lines that fit a width and estimates how much
// vertical space those lines consume. All lengths are in millimetres and
// all font sizes in points. A Measurer has no mutable state besides the
// width cache of its metrics, so identical input always yields identical
// output.
type Measurer struct {
	metrics          font.Metrics
	lineHeightFactor float64
}

// NewMeasurer creates a measurer over the given metrics with the default
// line height factor.
func NewMeasurer(m font.Metrics) *Measurer {
	return NewMeasurerWithFactor(m, DefaultLineHeightFactor)
}

// NewMeasurerWithFactor creates a measurer with a custom line height factor.
// Non-positive factors fall back to the default.
func NewMeasurerWithFactor(m font.Metrics, factor float64) *Measurer {
	if m == nil {
		m = font.Helvetica()
	}
	if factor <= 0 {
		factor = DefaultLineHeightFactor
	}
	return &Measurer{metrics: m, lineHeightFactor: factor}
}

// LineHeightFactor returns the line spacing multiplier.
func (m *Measurer) LineHeightFactor() float64 {
	return m.lineHeightFactor
}

// Metrics returns the underlying glyph metrics.
func (m *Measurer) Metrics() font.Metrics {
	return m.metrics
}

// StringWidth returns the rendered width of s in millimetres.
func (m *Measurer) StringWidth(s string, size float64, w font.Weight) float64 {
	return font.StringWidth(m.metrics, s, w) / 1000 * size * PtToMM
}

// Fits reports whether s fits within width when rendered at size.
func (m *Measurer) Fits(s string, width, size float64, w font.Weight) bool {
	return m.StringWidth(s, size, w) <= width
}

// LineHeight returns the distance between consecutive baselines.
func (m *Measurer) LineHeight(size float64) float64 {
	return EstimateHeight(1, size, m.lineHeightFactor)
}

// Height returns the vertical space consumed by n lines at size.
func (m *Measurer) Height(n int, size float64) float64 {
	return EstimateHeight(n, size, m.lineHeightFactor)
}

// EstimateHeight computes lineCount × fontSize × 0.3527 × lineHeightFactor.
// Non-positive line counts consume no space.
func EstimateHeight(lineCount int, fontSize, lineHeightFactor float64) float64 {
	if lineCount <= 0 {
		return 0
	}
	if lineHeightFactor <= 0 {
		lineHeightFactor = DefaultLineHeightFactor
	}
	return float64(lineCount) * fontSize * PtToMM * lineHeightFactor
}

// Wrap splits text into display lines no wider than width.
//
// Explicit newlines start a new paragraph; an empty paragraph yields an
// empty line so blank-line separators survive. Within a paragraph words are
// split on whitespace only and greedily packed. A word wider than width is
// placed alone on its own line rather than broken or dropped. Text that is
// empty or whitespace-only yields no lines.
func (m *Measurer) Wrap(s string, width, size float64, w font.Weight) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if strings.TrimSpace(s) == "" {
		return nil
	}

	spaceWidth := m.StringWidth(" ", size, w)

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		line.WriteString(words[0])
		lineWidth := m.StringWidth(words[0], size, w)

		for _, word := range words[1:] {
			wordWidth := m.StringWidth(word, size, w)
			if lineWidth+spaceWidth+wordWidth <= width {
				line.WriteByte(' ')
				line.WriteString(word)
				lineWidth += spaceWidth + wordWidth
				continue
			}
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineWidth = wordWidth
		}
		lines = append(lines, line.String())
	}

	return lines
}

// Overflowing returns the lines that are wider than width. After Wrap these
// are always single words that could not be broken.
func (m *Measurer) Overflowing(lines []string, width, size float64, w font.Weight) []string {
	var out []string
	for _, line := range lines {
		if !m.Fits(line, width, size, w) {
			out = append(out, line)
		}
	}
	return out
}
