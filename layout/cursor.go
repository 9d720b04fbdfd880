package layout

// Pager is the output document a Cursor adds pages to.
type Pager interface {
	AddPage()
}

// Position is a snapshot of a cursor.
type Position struct {
	Page int // 0-based
	Y    float64
}

// Cursor tracks the vertical write position for one render pass and decides
// page breaks. Page only increases; Y only increases within a page and
// resets to the top margin when a new page starts.
type Cursor struct {
	metrics PageMetrics
	pager   Pager

	y    float64
	page int

	// fresh is true until something is placed on the current page
	fresh bool

	onBreak func(page int)
}

// NewCursor creates a cursor at the top margin of the first page. The first
// page is assumed to exist already; later pages are requested from pager.
func NewCursor(m PageMetrics, pager Pager) *Cursor {
	return &Cursor{
		metrics: m,
		pager:   pager,
		y:       m.Margin,
		fresh:   true,
	}
}

// OnBreak registers a callback invoked after every page break with the
// 0-based index of the new page.
func (c *Cursor) OnBreak(fn func(page int)) {
	c.onBreak = fn
}

// Y returns the current vertical position.
func (c *Cursor) Y() float64 {
	return c.y
}

// Page returns the 0-based index of the current page.
func (c *Cursor) Page() int {
	return c.page
}

// Position returns the current page and y.
func (c *Cursor) Position() Position {
	return Position{Page: c.page, Y: c.y}
}

// Metrics returns the page metrics the cursor lays out against.
func (c *Cursor) Metrics() PageMetrics {
	return c.metrics
}

// Remaining returns the space left before the bottom margin.
func (c *Cursor) Remaining() float64 {
	return c.metrics.Bottom() - c.y
}

// Fits reports whether h more millimetres fit on the current page.
func (c *Cursor) Fits(h float64) bool {
	return c.y+h <= c.metrics.Bottom()
}

// EnsureSpace starts a new page when h does not fit below the current
// position and reports whether it did. A cursor on a page that has nothing
// on it yet never breaks: content taller than a whole page is placed there
// and overflows rather than producing empty pages.
func (c *Cursor) EnsureSpace(h float64) bool {
	if c.Fits(h) || c.fresh {
		return false
	}
	c.NewPage()
	return true
}

// Advance moves the cursor down by h. Negative heights are ignored.
func (c *Cursor) Advance(h float64) {
	if h <= 0 {
		return
	}
	c.y += h
	c.fresh = false
}

// NewPage starts a new page unconditionally.
func (c *Cursor) NewPage() {
	if c.pager != nil {
		c.pager.AddPage()
	}
	c.page++
	c.y = c.metrics.TopMargin
	c.fresh = true

	if c.onBreak != nil {
		c.onBreak(c.page)
	}
}
