package render

import (
	"fmt"

	"github.com/tsawler/folio/block"
	"github.com/tsawler/folio/canvas"
	"github.com/tsawler/folio/font"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/text"
	"github.com/tsawler/folio/theme"
)

// Geometry shared by the block renderers, in millimetres unless noted.
const (
	BannerHeight = 50
	ContentTop   = 60 // first y on page 1, below the banner

	BodySize = 10.0 // pt

	SectionPad    = 5
	SectionBar    = 10
	SectionGap    = 5
	SummaryMinH   = 35
	SummaryGap    = 10
	StatHeight    = 20
	StatGap       = 5 // between boxes
	StatRowGap    = 10
	RowHeight     = 10
	RowGap        = 8
	BadgeWidth    = 14
	BadgeHeight   = 6
	CalloutBar    = 8
	CalloutPad    = 8
	CalloutGap    = 10
	LabelColumn   = 40
	ItemGap       = 4
	ListGap       = 6
	ParagraphGap  = 8
	LabelLine     = 6
	CardBar       = 7
	CardGap       = 6
	ScoredGap     = 8
	QnaGap        = 8
	FooterOffset  = 10 // footer baseline above the page bottom
	DefaultIcon   = "■"
	DefaultSumHdr = "종합 요약"
)

// segment is an atomic vertical slice of a block. The height used for the
// page-break check is the same value the cursor advances by.
type segment struct {
	height float64
	gap    float64
	draw   func(c canvas.Canvas, y float64)
}

type note struct {
	kind WarningKind
	msg  string
}

// plan is the measured form of one block.
type plan struct {
	segments []segment
	notes    []note
}

func (p *plan) add(height, gap float64, draw func(c canvas.Canvas, y float64)) {
	p.segments = append(p.segments, segment{height: height, gap: gap, draw: draw})
}

// Extent is the vertical space a block consumes when it is not split by a
// page break: the cursor moves by Height + Gap.
type Extent struct {
	Height   float64
	Gap      float64
	Segments int
}

func (p *plan) extent() Extent {
	var e Extent
	e.Segments = len(p.segments)
	for i, s := range p.segments {
		e.Height += s.height
		if i < len(p.segments)-1 {
			e.Height += s.gap
		} else {
			e.Gap = s.gap
		}
	}
	return e
}

// planner measures blocks against fixed page metrics.
type planner struct {
	m           *text.Measurer
	pal         theme.Palette
	pm          layout.PageMetrics
	placeholder string
	notes       []note
}

func (p *planner) cw() float64 { return p.pm.ContentWidth() }

func (p *planner) left() float64 { return p.pm.Margin }

func (p *planner) right() float64 { return p.pm.Width - p.pm.Margin }

func (p *planner) lh(size float64) float64 { return p.m.LineHeight(size) }

// ascent approximates the distance from a line's top to its baseline.
func ascent(size float64) float64 {
	return size * text.PtToMM
}

// wrap wraps s and records words that do not fit.
func (p *planner) wrap(s string, width, size float64, w font.Weight) []string {
	lines := p.m.Wrap(s, width, size, w)
	for _, tok := range p.m.Overflowing(lines, width, size, w) {
		p.warn(WideToken, "%q is wider than %.1fmm", tok, width)
	}
	return lines
}

// line checks an unwrapped line against width.
func (p *planner) line(s string, width, size float64, w font.Weight) {
	if !p.m.Fits(s, width, size, w) {
		p.warn(WideLine, "%q is wider than %.1fmm", s, width)
	}
}

func (p *planner) warn(k WarningKind, format string, args ...interface{}) {
	p.notes = append(p.notes, note{kind: k, msg: fmt.Sprintf(format, args...)})
}

// style builds a text style whose line height matches the measurer.
func (p *planner) style(size float64, w font.Weight, c theme.Color) canvas.TextStyle {
	return canvas.TextStyle{Size: size, Weight: w, Color: c, LineHeight: p.lh(size)}
}

// plan dispatches to the renderer for b's kind.
func (p *planner) plan(b block.Block) (*plan, error) {
	p.notes = nil

	var out *plan
	switch v := b.(type) {
	case nil:
		return nil, ErrNilBlock
	case block.SectionHeader:
		out = p.sectionHeader(v)
	case block.SummaryCard:
		out = p.summaryCard(v)
	case block.StatRow:
		out = p.statRow(v)
	case block.RequirementRow:
		out = p.requirementRow(v)
	case block.CalloutBox:
		out = p.calloutBox(v)
	case block.KeyValueGrid:
		out = p.keyValueGrid(v)
	case block.NumberedList:
		out = p.numberedList(v)
	case block.Paragraph:
		out = p.paragraph(v)
	case block.BulletList:
		out = p.bulletList(v)
	case block.ScoredItem:
		out = p.scoredItem(v)
	case block.Card:
		out = p.card(v)
	case block.QnaItem:
		out = p.qnaItem(v)
	case block.Placeholder:
		out = p.placeholderBlock(v)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownBlock, b)
	}

	out.notes = p.notes
	p.notes = nil
	return out, nil
}
