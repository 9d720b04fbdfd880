package font

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/width"
)

// Weight selects the regular or bold face of a font family.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// String returns the fpdf style string for the weight ("" or "B").
func (w Weight) String() string {
	if w == Bold {
		return "B"
	}
	return ""
}

// Metrics reports glyph advance widths in 1000ths of an em.
type Metrics interface {
	Advance(r rune, w Weight) float64
}

// Coverage is implemented by metrics that know which runes their font can
// actually draw.
type Coverage interface {
	Covers(r rune) bool
}

// StringWidth calculates the total advance of s in 1000ths of an em.
func StringWidth(m Metrics, s string, w Weight) float64 {
	total := 0.0
	for _, r := range s {
		total += m.Advance(r, w)
	}
	return total
}

// Standard holds the width tables of one of the built-in PDF font families.
// Characters outside the table are estimated: East Asian wide and
// full-width runes take a full em, combining marks take nothing, anything
// else takes the family's default width.
type Standard struct {
	Name string

	regular *[95]float64
	bold    *[95]float64
	missing float64
}

// Helvetica returns the metrics of the Helvetica family used by the PDF
// canvas when no TrueType font is configured.
func Helvetica() *Standard {
	return &Standard{
		Name:    "Helvetica",
		regular: &helveticaWidths,
		bold:    &helveticaBoldWidths,
		missing: 556,
	}
}

// Courier returns monospaced metrics. Every printable ASCII glyph is 600 units.
func Courier() *Standard {
	return &Standard{
		Name:    "Courier",
		regular: &courierWidths,
		bold:    &courierWidths,
		missing: 600,
	}
}

// Core returns the standard metrics named name, case-insensitively.
// The empty name is Helvetica.
func Core(name string) (*Standard, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "helvetica":
		return Helvetica(), true
	case "courier":
		return Courier(), true
	}
	return nil, false
}

// Advance returns the width of r in 1000ths of an em.
func (s *Standard) Advance(r rune, w Weight) float64 {
	if r >= 32 && r <= 126 {
		if w == Bold {
			return s.bold[r-32]
		}
		return s.regular[r-32]
	}
	return fallbackAdvance(r, s.missing)
}

// Covers reports whether r can be drawn with the core font. Core fonts are
// written in the cp1252 encoding; anything outside it prints as '.'.
func (s *Standard) Covers(r rune) bool {
	_, ok := charmap.Windows1252.EncodeRune(r)
	return ok
}

// fallbackAdvance estimates the width of a rune no table knows about.
func fallbackAdvance(r rune, missing float64) float64 {
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || r == '\u200b' {
		return 0
	}
	if IsWide(r) {
		return 1000
	}
	return missing
}

// IsWide reports whether r occupies a full em (Hangul, CJK ideographs,
// full-width forms).
func IsWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// Helvetica widths (in 1000ths of em) for ASCII 32..126
var helveticaWidths = [95]float64{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278, // ' '../
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278, 584, 584, 584, 556, // 0..?
	1015, 667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, 722, 778, // @..O
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 278, 278, 278, 469, 556, // P.._
	333, 556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, 556, 556, // `..o
	556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584, // p..~
}

// Helvetica-Bold widths (in 1000ths of em) for ASCII 32..126
var helveticaBoldWidths = [95]float64{
	278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333, 278, 278,
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 333, 333, 584, 584, 584, 611,
	975, 722, 722, 722, 722, 667, 611, 778, 722, 278, 556, 722, 611, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 333, 278, 333, 584, 556,
	333, 556, 611, 556, 611, 556, 333, 611, 611, 278, 278, 556, 278, 889, 611, 611,
	611, 611, 389, 556, 333, 611, 556, 778, 556, 556, 500, 389, 280, 389, 584,
}

// Courier widths (monospaced)
var courierWidths [95]float64

func init() {
	for i := range courierWidths {
		courierWidths[i] = 600
	}
}
