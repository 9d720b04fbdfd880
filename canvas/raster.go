package canvas

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/text"
	"github.com/tsawler/folio/theme"
)

// RasterConfig holds configuration for a raster canvas.
type RasterConfig struct {
	Metrics layout.PageMetrics

	// PixelsPerMM sets the preview resolution; 4 is roughly 100 dpi
	PixelsPerMM float64

	// FontData is an optional TrueType font. Without it a fixed 7x13
	// bitmap face is used regardless of size.
	FontData []byte

	Background theme.Color
}

// DefaultRasterConfig returns an A4 configuration at 4 px/mm.
func DefaultRasterConfig() RasterConfig {
	return RasterConfig{
		Metrics:     layout.A4(),
		PixelsPerMM: 4,
		Background:  theme.RGB(255, 255, 255),
	}
}

// Raster is a Canvas that paints each page into an RGBA image, used for
// PNG previews.
type Raster struct {
	cfg     RasterConfig
	font    *truetype.Font
	faces   map[float64]xfont.Face
	pages   []*gg.Context
	current int
}

// NewRaster creates a raster canvas with its first page already added.
func NewRaster(cfg RasterConfig) (*Raster, error) {
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	if cfg.PixelsPerMM <= 0 {
		cfg.PixelsPerMM = DefaultRasterConfig().PixelsPerMM
	}

	r := &Raster{cfg: cfg, faces: make(map[float64]xfont.Face)}
	if len(cfg.FontData) > 0 {
		f, err := truetype.Parse(cfg.FontData)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		r.font = f
	}

	r.AddPage()
	return r, nil
}

func (r *Raster) px(mm float64) float64 {
	return mm * r.cfg.PixelsPerMM
}

func (r *Raster) dc() *gg.Context {
	return r.pages[r.current]
}

// AddPage appends a blank page and makes it current.
func (r *Raster) AddPage() {
	w := int(math.Ceil(r.px(r.cfg.Metrics.Width)))
	h := int(math.Ceil(r.px(r.cfg.Metrics.Height)))
	dc := gg.NewContext(w, h)
	dc.SetColor(r.cfg.Background.ToRGBA())
	dc.Clear()

	r.pages = append(r.pages, dc)
	r.current = len(r.pages) - 1
}

// PageCount returns the number of pages.
func (r *Raster) PageCount() int {
	return len(r.pages)
}

// SetPage makes page (0-based) current. Out of range pages are ignored.
func (r *Raster) SetPage(page int) {
	if page >= 0 && page < len(r.pages) {
		r.current = page
	}
}

func (r *Raster) paint(p Paint) {
	dc := r.dc()
	switch p.Style {
	case Fill:
		dc.SetColor(p.Fill.ToRGBA())
		dc.Fill()
	case Stroke:
		dc.SetColor(p.Stroke.ToRGBA())
		dc.SetLineWidth(r.px(p.lineWidth()))
		dc.Stroke()
	case FillStroke:
		dc.SetColor(p.Fill.ToRGBA())
		dc.FillPreserve()
		dc.SetColor(p.Stroke.ToRGBA())
		dc.SetLineWidth(r.px(p.lineWidth()))
		dc.Stroke()
	}
}

// FillRect fills rect with c.
func (r *Raster) FillRect(rect Rect, c theme.Color) {
	r.dc().DrawRectangle(r.px(rect.X), r.px(rect.Y), r.px(rect.W), r.px(rect.H))
	r.paint(Filled(c))
}

// StrokeRect outlines rect with c.
func (r *Raster) StrokeRect(rect Rect, c theme.Color, lineWidth float64) {
	r.dc().DrawRectangle(r.px(rect.X), r.px(rect.Y), r.px(rect.W), r.px(rect.H))
	r.paint(Stroked(c, lineWidth))
}

// RoundedRect draws rect with rounded corners.
func (r *Raster) RoundedRect(rect Rect, radius float64, p Paint) {
	r.dc().DrawRoundedRectangle(r.px(rect.X), r.px(rect.Y), r.px(rect.W), r.px(rect.H), r.px(radius))
	r.paint(p)
}

// Circle draws a circle.
func (r *Raster) Circle(center Point, radius float64, p Paint) {
	r.dc().DrawCircle(r.px(center.X), r.px(center.Y), r.px(radius))
	r.paint(p)
}

// Line draws a straight line.
func (r *Raster) Line(from, to Point, c theme.Color, lineWidth float64) {
	r.dc().DrawLine(r.px(from.X), r.px(from.Y), r.px(to.X), r.px(to.Y))
	r.paint(Stroked(c, lineWidth))
}

// face returns a font face for size points, cached per size.
func (r *Raster) face(size float64) xfont.Face {
	if r.font == nil {
		return basicfont.Face7x13
	}
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(r.font, &truetype.Options{
		Size:    r.px(size * text.PtToMM),
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	r.faces[size] = f
	return f
}

// Text draws lines of text. Both weights share one face.
func (r *Raster) Text(lines []string, x, y float64, s TextStyle) {
	dc := r.dc()
	dc.SetFontFace(r.face(s.Size))
	dc.SetColor(s.Color.ToRGBA())

	y = s.baseline(y)
	lh := s.lineHeight()
	for i, line := range lines {
		w, _ := dc.MeasureString(line)
		lx := alignX(r.px(x), w, s.Align)
		dc.DrawString(line, lx, r.px(y+float64(i)*lh))
	}
}

// EncodePNG writes page (0-based) as PNG.
func (r *Raster) EncodePNG(page int, w io.Writer) error {
	if page < 0 || page >= len(r.pages) {
		return fmt.Errorf("page %d out of range [0, %d)", page, len(r.pages))
	}
	if err := r.pages[page].EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode page %d: %w", page, err)
	}
	return nil
}
