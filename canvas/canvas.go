package canvas

import (
	"github.com/tsawler/folio/font"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/text"
	"github.com/tsawler/folio/theme"
)

// Canvas draws primitives at absolute page coordinates in millimetres,
// with the origin at the top-left corner and y growing downwards.
//
// A canvas starts with one page. Primitives go to the current page, which
// is the last one added unless SetPage selected another. Implementations
// never consult cursor or measurer state; callers pass every coordinate.
type Canvas interface {
	layout.Pager

	// PageCount returns the number of pages.
	PageCount() int

	// SetPage makes page (0-based) current.
	SetPage(page int)

	FillRect(r Rect, c theme.Color)
	StrokeRect(r Rect, c theme.Color, lineWidth float64)
	RoundedRect(r Rect, radius float64, p Paint)
	Circle(center Point, radius float64, p Paint)
	Line(from, to Point, c theme.Color, lineWidth float64)

	// Text draws lines starting with the first baseline at y. Subsequent
	// lines are LineHeight apart.
	Text(lines []string, x, y float64, s TextStyle)
}

// Style selects how a closed shape is painted.
type Style int

const (
	Fill Style = iota
	Stroke
	FillStroke
)

// fpdfStyle returns the style string fpdf expects.
func (s Style) fpdfStyle() string {
	switch s {
	case Stroke:
		return "D"
	case FillStroke:
		return "FD"
	}
	return "F"
}

func (s Style) fills() bool   { return s == Fill || s == FillStroke }
func (s Style) strokes() bool { return s == Stroke || s == FillStroke }

// Paint describes fill and stroke for a closed shape.
type Paint struct {
	Style     Style
	Fill      theme.Color
	Stroke    theme.Color
	LineWidth float64 // stroke width in mm, 0 uses DefaultLineWidth
}

// DefaultLineWidth is the stroke width used when none is given.
const DefaultLineWidth = 0.2

// Filled returns a fill-only paint.
func Filled(c theme.Color) Paint {
	return Paint{Style: Fill, Fill: c}
}

// Stroked returns a stroke-only paint.
func Stroked(c theme.Color, lineWidth float64) Paint {
	return Paint{Style: Stroke, Stroke: c, LineWidth: lineWidth}
}

func (p Paint) lineWidth() float64 {
	if p.LineWidth <= 0 {
		return DefaultLineWidth
	}
	return p.LineWidth
}

// Align is horizontal text alignment relative to x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VAlign is vertical text alignment relative to y.
type VAlign int

const (
	// Baseline puts the first baseline at y
	Baseline VAlign = iota
	// Middle centres the first line's capitals on y
	Middle
)

// TextStyle describes a run of text.
type TextStyle struct {
	Size       float64 // points
	Weight     font.Weight
	Color      theme.Color
	Align      Align
	VAlign     VAlign
	LineHeight float64 // mm between baselines, 0 derives it from Size
}

// lineHeight returns the baseline spacing.
func (s TextStyle) lineHeight() float64 {
	if s.LineHeight > 0 {
		return s.LineHeight
	}
	return text.EstimateHeight(1, s.Size, text.DefaultLineHeightFactor)
}

// baseline converts y to the first baseline according to VAlign.
func (s TextStyle) baseline(y float64) float64 {
	if s.VAlign == Middle {
		return y + s.Size*text.PtToMM*0.35
	}
	return y
}

// alignX shifts x for a line of the given width.
func alignX(x, width float64, a Align) float64 {
	switch a {
	case AlignCenter:
		return x - width/2
	case AlignRight:
		return x - width
	}
	return x
}

var (
	_ Canvas = (*PDF)(nil)
	_ Canvas = (*Raster)(nil)
	_ Canvas = (*Recorder)(nil)
	_ Canvas = (*Multi)(nil)
)
