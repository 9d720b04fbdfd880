package canvas

import (
	"github.com/tsawler/folio/theme"
)

// OpKind names a recorded primitive.
type OpKind string

const (
	OpFillRect    OpKind = "fill_rect"
	OpStrokeRect  OpKind = "stroke_rect"
	OpRoundedRect OpKind = "rounded_rect"
	OpCircle      OpKind = "circle"
	OpLine        OpKind = "line"
	OpText        OpKind = "text"
)

// Op is one recorded primitive. Only the fields relevant to Kind are set.
type Op struct {
	Page int
	Kind OpKind

	Rect   Rect
	Radius float64
	Paint  Paint

	From, To Point

	Lines []string
	At    Point
	Style TextStyle
}

// Bounds returns the area an op covers. Text is measured by the caller,
// so a text op covers only its anchor point.
func (op Op) Bounds() Rect {
	switch op.Kind {
	case OpCircle:
		return R(op.At.X, op.At.Y, 0, 0).Inset(-op.Radius)
	case OpLine:
		return R(op.From.X, op.From.Y, 0, 0).Union(R(op.To.X, op.To.Y, 0, 0))
	case OpText:
		return R(op.At.X, op.At.Y, 0, 0)
	}
	return op.Rect
}

// Recorder is a Canvas that keeps every primitive in memory instead of
// drawing it.
type Recorder struct {
	ops     []Op
	pages   int
	current int
}

// NewRecorder creates a recorder with one page.
func NewRecorder() *Recorder {
	return &Recorder{pages: 1}
}

// AddPage appends a page and makes it current.
func (r *Recorder) AddPage() {
	r.pages++
	r.current = r.pages - 1
}

// PageCount returns the number of pages.
func (r *Recorder) PageCount() int {
	return r.pages
}

// SetPage makes page (0-based) current.
func (r *Recorder) SetPage(page int) {
	if page >= 0 && page < r.pages {
		r.current = page
	}
}

func (r *Recorder) add(op Op) {
	op.Page = r.current
	r.ops = append(r.ops, op)
}

func (r *Recorder) FillRect(rect Rect, c theme.Color) {
	r.add(Op{Kind: OpFillRect, Rect: rect, Paint: Filled(c)})
}

func (r *Recorder) StrokeRect(rect Rect, c theme.Color, lineWidth float64) {
	r.add(Op{Kind: OpStrokeRect, Rect: rect, Paint: Stroked(c, lineWidth)})
}

func (r *Recorder) RoundedRect(rect Rect, radius float64, p Paint) {
	r.add(Op{Kind: OpRoundedRect, Rect: rect, Radius: radius, Paint: p})
}

func (r *Recorder) Circle(center Point, radius float64, p Paint) {
	r.add(Op{Kind: OpCircle, At: center, Radius: radius, Paint: p})
}

func (r *Recorder) Line(from, to Point, c theme.Color, lineWidth float64) {
	r.add(Op{Kind: OpLine, From: from, To: to, Paint: Stroked(c, lineWidth)})
}

func (r *Recorder) Text(lines []string, x, y float64, s TextStyle) {
	cp := make([]string, len(lines))
	copy(cp, lines)
	r.add(Op{Kind: OpText, Lines: cp, At: Pt(x, y), Style: s})
}

// Ops returns the recorded primitives in drawing order.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// OpsOn returns the primitives drawn on page.
func (r *Recorder) OpsOn(page int) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Page == page {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns every text line drawn on page, in order. A negative page
// returns the lines of all pages.
func (r *Recorder) Texts(page int) []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == OpText && (page < 0 || op.Page == page) {
			out = append(out, op.Lines...)
		}
	}
	return out
}

// Extent returns the union of the bounds of every shape drawn on page.
// Text is left out; a page holding only text has an empty extent.
func (r *Recorder) Extent(page int) Rect {
	var ext Rect
	first := true
	for _, op := range r.ops {
		if op.Page != page || op.Kind == OpText {
			continue
		}
		if first {
			ext, first = op.Bounds(), false
			continue
		}
		ext = ext.Union(op.Bounds())
	}
	return ext
}

// Reset discards all ops and pages.
func (r *Recorder) Reset() {
	r.ops = nil
	r.pages = 1
	r.current = 0
}
