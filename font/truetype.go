package font

import (
	"fmt"
	"os"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// TrueType measures text with the advance widths of an sfnt (TrueType or
// OpenType) font program, so that wrapping decisions match the glyphs the
// PDF canvas embeds. The same program serves both weights, mirroring how
// the canvas registers a single file for the regular and bold styles.
type TrueType struct {
	// Data is the raw font program, shared with the canvases.
	Data []byte

	font     *sfnt.Font
	fallback Metrics

	mu      sync.Mutex
	widths  map[widthKey]float64
	covered map[rune]bool
}

// widthKey caches per weight: the font program serves both, but runes it
// lacks fall back to metrics that may not.
type widthKey struct {
	r rune
	w Weight
}

// ParseTrueType parses a font program. Runes the font has no glyph for are
// measured with Helvetica metrics.
func ParseTrueType(data []byte) (*TrueType, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font program: %w", err)
	}
	return &TrueType{
		Data:     data,
		font:     f,
		fallback: Helvetica(),
		widths:   make(map[widthKey]float64),
		covered:  make(map[rune]bool),
	}, nil
}

// LoadTrueType reads and parses a font file.
func LoadTrueType(path string) (*TrueType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}
	return ParseTrueType(data)
}

// Advance returns the width of r in 1000ths of an em.
func (t *TrueType) Advance(r rune, w Weight) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := widthKey{r: r, w: w}
	if adv, ok := t.widths[key]; ok {
		return adv
	}

	adv, ok := t.glyphAdvance(r)
	if !ok {
		adv = t.fallback.Advance(r, w)
	}
	t.widths[key] = adv
	return adv
}

// Covers reports whether the font program has a glyph for r.
func (t *TrueType) Covers(r rune) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if ok, seen := t.covered[r]; seen {
		return ok
	}
	_, ok := t.glyphAdvance(r)
	t.covered[r] = ok
	return ok
}

// glyphAdvance looks r up in the font's cmap. Glyph 0 is .notdef and is
// treated as missing.
func (t *TrueType) glyphAdvance(r rune) (float64, bool) {
	var buf sfnt.Buffer
	idx, err := t.font.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	// Scaling the em to 1000 pixels yields advances directly in 1000ths of an em.
	adv, err := t.font.GlyphAdvance(&buf, idx, fixed.I(1000), xfont.HintingNone)
	if err != nil {
		return 0, false
	}
	return float64(adv) / 64, true
}
