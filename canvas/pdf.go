package canvas

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/theme"
)

// PDFConfig holds configuration for a PDF canvas.
type PDFConfig struct {
	Metrics layout.PageMetrics

	// FontData is a TrueType font embedded for both weights. Without it
	// the core font named by FontFamily (Helvetica or Courier) is used and
	// text is translated to cp1252. FontFamily is ignored with FontData.
	FontData   []byte
	FontFamily string

	Title    string
	Subject  string
	Author   string
	Keywords string

	// CreationDate is stamped into the document info. The zero value uses
	// a fixed date so identical input produces identical bytes.
	CreationDate time.Time
}

// DefaultPDFConfig returns an A4 configuration with the core fonts.
func DefaultPDFConfig() PDFConfig {
	return PDFConfig{
		Metrics:    layout.A4(),
		FontFamily: "Helvetica",
	}
}

// embeddedFamily is the name a configured TrueType font is registered
// under, kept apart from the core font names.
const embeddedFamily = "Body"

var fixedCreationDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// PDF is a Canvas writing to an in-memory PDF document.
type PDF struct {
	doc    *fpdf.Fpdf
	family string
	tr     func(string) string
}

// NewPDF creates a PDF canvas with its first page already added.
func NewPDF(cfg PDFConfig) (*PDF, error) {
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: cfg.Metrics.Width, Ht: cfg.Metrics.Height},
	})
	m := cfg.Metrics.Margin
	doc.SetMargins(m, m, m)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCatalogSort(true)

	date := cfg.CreationDate
	if date.IsZero() {
		date = fixedCreationDate
	}
	doc.SetCreationDate(date)
	doc.SetModificationDate(date)

	c := &PDF{doc: doc, tr: func(s string) string { return s }}

	if len(cfg.FontData) > 0 {
		doc.AddUTF8FontFromBytes(embeddedFamily, "", cfg.FontData)
		doc.AddUTF8FontFromBytes(embeddedFamily, "B", cfg.FontData)
		c.family = embeddedFamily
	} else {
		c.family = "Helvetica"
		if cfg.FontFamily == "Courier" {
			c.family = "Courier"
		}
		c.tr = doc.UnicodeTranslatorFromDescriptor("")
	}
	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	utf8 := true
	doc.SetTitle(cfg.Title, utf8)
	doc.SetSubject(cfg.Subject, utf8)
	doc.SetAuthor(cfg.Author, utf8)
	doc.SetKeywords(cfg.Keywords, utf8)
	doc.SetCreator("folio", utf8)

	doc.AddPage()
	return c, nil
}

// AddPage appends a page and makes it current.
func (c *PDF) AddPage() {
	c.doc.AddPage()
}

// PageCount returns the number of pages.
func (c *PDF) PageCount() int {
	return c.doc.PageCount()
}

// SetPage makes page (0-based) current.
func (c *PDF) SetPage(page int) {
	c.doc.SetPage(page + 1)
}

func (c *PDF) setFill(p Paint) {
	r, g, b := p.Fill.Ints()
	c.doc.SetFillColor(r, g, b)
	r, g, b = p.Stroke.Ints()
	c.doc.SetDrawColor(r, g, b)
	c.doc.SetLineWidth(p.lineWidth())
}

// FillRect fills r with c.
func (c *PDF) FillRect(r Rect, col theme.Color) {
	c.setFill(Filled(col))
	c.doc.Rect(r.X, r.Y, r.W, r.H, "F")
}

// StrokeRect outlines r with c.
func (c *PDF) StrokeRect(r Rect, col theme.Color, lineWidth float64) {
	c.setFill(Stroked(col, lineWidth))
	c.doc.Rect(r.X, r.Y, r.W, r.H, "D")
}

// RoundedRect draws r with all four corners rounded.
func (c *PDF) RoundedRect(r Rect, radius float64, p Paint) {
	c.setFill(p)
	c.doc.RoundedRect(r.X, r.Y, r.W, r.H, radius, "1234", p.Style.fpdfStyle())
}

// Circle draws a circle.
func (c *PDF) Circle(center Point, radius float64, p Paint) {
	c.setFill(p)
	c.doc.Circle(center.X, center.Y, radius, p.Style.fpdfStyle())
}

// Line draws a straight line.
func (c *PDF) Line(from, to Point, col theme.Color, lineWidth float64) {
	c.setFill(Stroked(col, lineWidth))
	c.doc.Line(from.X, from.Y, to.X, to.Y)
}

// Text draws lines of text.
func (c *PDF) Text(lines []string, x, y float64, s TextStyle) {
	c.doc.SetFont(c.family, s.Weight.String(), s.Size)
	r, g, b := s.Color.Ints()
	c.doc.SetTextColor(r, g, b)

	y = s.baseline(y)
	lh := s.lineHeight()
	for i, line := range lines {
		out := c.tr(line)
		lx := x
		if s.Align != AlignLeft {
			lx = alignX(x, c.doc.GetStringWidth(out), s.Align)
		}
		c.doc.Text(lx, y+float64(i)*lh, out)
	}
}

// Err returns the first error the underlying document recorded.
func (c *PDF) Err() error {
	return c.doc.Error()
}

// WriteTo writes the finished document to w.
func (c *PDF) WriteTo(w io.Writer) (int64, error) {
	if err := c.doc.Error(); err != nil {
		return 0, fmt.Errorf("failed to build PDF: %w", err)
	}
	var buf bytes.Buffer
	if err := c.doc.Output(&buf); err != nil {
		return 0, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.WriteTo(w)
}

// Bytes returns the finished document.
func (c *PDF) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
