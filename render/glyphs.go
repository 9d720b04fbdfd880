package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tsawler/folio/canvas"
	"github.com/tsawler/folio/font"
)

// glyphSample caps how many distinct missing characters a warning quotes.
const glyphSample = 5

// glyphCheck forwards every primitive and counts the characters of text
// calls that the font cannot draw.
type glyphCheck struct {
	canvas.Canvas
	cov     font.Coverage
	font    string
	count   int
	first   int
	sample  []rune
	seen    map[rune]bool
	current *int
}

// newGlyphCheck wraps c when m can tell which runes it covers. current
// points at the index of the block being drawn.
func newGlyphCheck(c canvas.Canvas, m font.Metrics, current *int) (*glyphCheck, bool) {
	cov, ok := m.(font.Coverage)
	if !ok {
		return nil, false
	}
	name := "the configured font"
	if std, ok := m.(*font.Standard); ok {
		name = std.Name
	}
	return &glyphCheck{
		Canvas:  c,
		cov:     cov,
		font:    name,
		seen:    make(map[rune]bool),
		current: current,
	}, true
}

func (g *glyphCheck) Text(lines []string, x, y float64, s canvas.TextStyle) {
	for _, line := range lines {
		for _, r := range line {
			if unicode.IsControl(r) || g.cov.Covers(r) {
				continue
			}
			if g.count == 0 {
				g.first = *g.current
			}
			g.count++
			if !g.seen[r] && len(g.sample) < glyphSample {
				g.seen[r] = true
				g.sample = append(g.sample, r)
			}
		}
	}
	g.Canvas.Text(lines, x, y, s)
}

// warning summarises the missing characters, or reports false when every
// character could be drawn.
func (g *glyphCheck) warning() (Warning, bool) {
	if g.count == 0 {
		return Warning{}, false
	}
	quoted := make([]string, len(g.sample))
	for i, r := range g.sample {
		quoted[i] = fmt.Sprintf("%q", r)
	}
	return Warning{
		Index: g.first,
		Kind:  MissingGlyph,
		Page:  -1,
		Message: fmt.Sprintf("%d characters cannot be drawn with %s (%s); configure a TrueType font that covers them",
			g.count, g.font, strings.Join(quoted, ", ")),
	}, true
}
