package render

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/folio/block"
	"github.com/tsawler/folio/canvas"
	"github.com/tsawler/folio/font"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/text"
	"github.com/tsawler/folio/theme"
)

// State is a phase of a render pass.
type State int

const (
	NotStarted State = iota
	DrawingHeader
	DrawingSections
	Finalizing
	Done
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case DrawingHeader:
		return "drawing_header"
	case DrawingSections:
		return "drawing_sections"
	case Finalizing:
		return "finalizing"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Observer is notified on every state transition. index is the block
// being drawn during DrawingSections and the block count otherwise.
type Observer func(s State, index int)

// Config holds configuration for an Engine.
type Config struct {
	Theme *theme.Theme

	// Metrics supplies glyph widths. Nil uses Helvetica with full-width
	// East Asian fallback.
	Metrics font.Metrics

	Logger   *zap.Logger
	Observer Observer
}

// DefaultConfig returns the default theme with Helvetica metrics and a
// no-op logger.
func DefaultConfig() Config {
	return Config{
		Theme:  theme.Default(),
		Logger: zap.NewNop(),
	}
}

// Engine lays out block lists onto pages. An Engine holds only immutable
// configuration; each Render call owns its cursor and canvas, so one
// Engine may serve concurrent renders.
type Engine struct {
	theme    *theme.Theme
	metrics  layout.PageMetrics
	measurer *text.Measurer
	log      *zap.Logger
	observer Observer
}

// New creates an engine from cfg.
func New(cfg Config) (*Engine, error) {
	th := cfg.Theme
	if th == nil {
		th = theme.Default()
	}
	if err := th.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{
		theme:    th.Clone(),
		metrics:  th.Metrics(),
		measurer: text.NewMeasurerWithFactor(cfg.Metrics, th.LineHeightFactor),
		log:      log,
		observer: cfg.Observer,
	}, nil
}

// Measurer returns the text measurer the engine lays out with.
func (e *Engine) Measurer() *text.Measurer {
	return e.measurer
}

// PageMetrics returns the page geometry.
func (e *Engine) PageMetrics() layout.PageMetrics {
	return e.metrics
}

func (e *Engine) planner() *planner {
	return &planner{
		m:           e.measurer,
		pal:         e.theme.Palette,
		pm:          e.metrics,
		placeholder: e.theme.Placeholder,
	}
}

// Measure returns the space b consumes when no page break splits it. Render
// advances the cursor by exactly Height + Gap for such a block.
func (e *Engine) Measure(b block.Block) (Extent, error) {
	p, err := e.planner().plan(b)
	if err != nil {
		return Extent{}, err
	}
	return p.extent(), nil
}

// Header is the banner drawn at the top of the first page.
type Header struct {
	Title    string
	Subtitle string
	Date     string // preformatted; empty omits the "Generated on" part
}

// Placement records where a block was drawn.
type Placement struct {
	Index int
	Kind  block.Kind
	Start layout.Position // where the block's first segment was drawn
	End   layout.Position // cursor after the block and its gap

	// Broke is set when a page break happened inside or right before the
	// block.
	Broke bool
}

// Result summarises a finished render.
type Result struct {
	Pages    int
	Blocks   []Placement
	Warnings []Warning
}

func (e *Engine) enter(s State, index int) {
	if e.observer != nil {
		e.observer(s, index)
	}
}

// Render draws the banner, every block in order and the page footers onto
// c. The canvas must hold exactly one page.
//
// Any failure aborts the whole render and is returned as *Error; the
// canvas content is then undefined and must be discarded. Panics raised
// while planning or drawing are converted to *Error at this boundary.
func (e *Engine) Render(c canvas.Canvas, hdr Header, blocks []block.Block) (res Result, err error) {
	start := time.Now()
	index := -1
	kind := block.KindUnknown

	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("panic: %v", r)
			}
			e.log.Error("render aborted",
				zap.Int("block", index),
				zap.Stringer("kind", kind),
				zap.Any("panic", r))
			res, err = Result{}, &Error{Index: index, Kind: kind, Err: cause}
		}
	}()

	e.enter(NotStarted, 0)
	if c == nil {
		return Result{}, &Error{Index: -1, Err: ErrNilCanvas}
	}

	glyphs, checking := newGlyphCheck(c, e.measurer.Metrics(), &index)
	if checking {
		c = glyphs
	}

	cur := layout.NewCursor(e.metrics, c)
	cur.OnBreak(func(page int) {
		e.log.Debug("page break", zap.Int("page", page), zap.Int("block", index))
	})

	e.enter(DrawingHeader, 0)
	res.Warnings = append(res.Warnings, e.banner(c, hdr)...)
	cur.Advance(ContentTop - cur.Y())

	p := e.planner()
	for i, b := range blocks {
		index = i
		e.enter(DrawingSections, i)
		if b == nil {
			return Result{}, &Error{Index: i, Err: ErrNilBlock}
		}
		kind = b.Kind()

		pl, perr := p.plan(b)
		if perr != nil {
			return Result{}, &Error{Index: i, Kind: kind, Err: perr}
		}

		placed := Placement{Index: i, Kind: kind, Start: cur.Position()}
		for j, s := range pl.segments {
			if cur.EnsureSpace(s.height) {
				placed.Broke = true
			}
			if j == 0 {
				placed.Start = cur.Position()
			}
			if s.height > e.metrics.ContentHeight() {
				res.Warnings = append(res.Warnings, Warning{
					Index:   i,
					Kind:    TallBlock,
					Page:    cur.Page(),
					Message: fmt.Sprintf("%s segment is %.1fmm, page holds %.1fmm", kind, s.height, e.metrics.ContentHeight()),
				})
			}
			s.draw(c, cur.Y())
			cur.Advance(s.height + s.gap)
		}
		placed.End = cur.Position()
		res.Blocks = append(res.Blocks, placed)

		for _, n := range pl.notes {
			res.Warnings = append(res.Warnings, Warning{Index: i, Kind: n.kind, Page: cur.Page(), Message: n.msg})
		}
	}
	index, kind = -1, block.KindUnknown

	e.enter(Finalizing, len(blocks))
	res.Pages = c.PageCount()
	e.footers(c, res.Pages)

	if checking {
		if w, ok := glyphs.warning(); ok {
			res.Warnings = append(res.Warnings, w)
		}
	}

	e.enter(Done, len(blocks))
	e.log.Info("render complete",
		zap.String("title", hdr.Title),
		zap.Int("blocks", len(blocks)),
		zap.Int("pages", res.Pages),
		zap.Int("warnings", len(res.Warnings)),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

// banner draws the dark header band on page 1.
func (e *Engine) banner(c canvas.Canvas, hdr Header) []Warning {
	pal := e.theme.Palette
	m := e.metrics
	p := e.planner()

	c.FillRect(canvas.R(0, 0, m.Width, BannerHeight), pal.HeaderBg)
	p.line(hdr.Title, m.ContentWidth(), 24, font.Bold)
	c.Text([]string{hdr.Title}, m.Margin, 32, p.style(24, font.Bold, pal.White))

	var parts []string
	if hdr.Date != "" {
		parts = append(parts, "Generated on "+hdr.Date)
	}
	if hdr.Subtitle != "" {
		parts = append(parts, hdr.Subtitle)
	}
	if len(parts) > 0 {
		c.Text([]string{strings.Join(parts, "  |  ")}, m.Margin, 42, p.style(BodySize, font.Regular, pal.Subtitle))
	}

	var out []Warning
	for _, n := range p.notes {
		out = append(out, Warning{Index: -1, Kind: n.kind, Page: 0, Message: n.msg})
	}
	return out
}

// footers stamps "{page} / {total}" on every page.
func (e *Engine) footers(c canvas.Canvas, total int) {
	m := e.metrics
	st := canvas.TextStyle{
		Size:  8,
		Color: e.theme.Palette.Footer,
		Align: canvas.AlignRight,
	}
	for i := 0; i < total; i++ {
		c.SetPage(i)
		c.Text([]string{PageLabel(i+1, total)}, m.Width-m.Margin, m.Height-FooterOffset, st)
	}
}

// PageLabel formats a footer page number.
func PageLabel(page, total int) string {
	return fmt.Sprintf("%d / %d", page, total)
}
