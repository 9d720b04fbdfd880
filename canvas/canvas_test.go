package canvas

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tsawler/folio/font"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/theme"
)

var (
	red  = theme.RGB(255, 0, 0)
	gray = theme.RGB(128, 128, 128)
)

func TestRect(t *testing.T) {
	r := R(10, 20, 30, 40)

	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("Expected right 40 bottom 60, got %v %v", r.Right(), r.Bottom())
	}
	if u := r.Union(R(0, 0, 5, 5)); u != R(0, 0, 40, 60) {
		t.Errorf("Unexpected union %v", u)
	}
	if in := r.Inset(5); in != R(15, 25, 20, 30) {
		t.Errorf("Unexpected inset %v", in)
	}
	if !R(0, 0, 0, 5).Empty() || r.Empty() {
		t.Error("Empty is wrong")
	}
}

func TestRecorderExtent(t *testing.T) {
	rec := NewRecorder()
	rec.FillRect(R(15, 10, 20, 5), red)
	rec.Circle(Pt(100, 50), 3, Filled(red))
	rec.Line(Pt(40, 80), Pt(20, 70), gray, 0.5)
	rec.AddPage()
	rec.Text([]string{"only text"}, 15, 30, TextStyle{Size: 10})

	if got := rec.Extent(0); got != R(15, 10, 88, 70) {
		t.Errorf("Unexpected extent %v", got)
	}
	if !rec.Extent(1).Empty() {
		t.Errorf("Expected empty extent on a text-only page, got %v", rec.Extent(1))
	}
	if got := rec.OpsOn(0)[1].Bounds(); got != R(97, 47, 6, 6) {
		t.Errorf("Unexpected circle bounds %v", got)
	}
}

func TestAlignX(t *testing.T) {
	tests := []struct {
		align Align
		want  float64
	}{
		{AlignLeft, 100},
		{AlignCenter, 90},
		{AlignRight, 80},
	}
	for _, tt := range tests {
		if got := alignX(100, 20, tt.align); got != tt.want {
			t.Errorf("alignX(%v) = %v, expected %v", tt.align, got, tt.want)
		}
	}
}

func TestTextStyle(t *testing.T) {
	s := TextStyle{Size: 10}
	want := 10 * 0.3527 * 1.6
	if math.Abs(s.lineHeight()-want) > 1e-9 {
		t.Errorf("Expected derived line height %v, got %v", want, s.lineHeight())
	}
	s.LineHeight = 7
	if s.lineHeight() != 7 {
		t.Errorf("Expected explicit line height 7, got %v", s.lineHeight())
	}
	if s.baseline(50) != 50 {
		t.Error("Baseline alignment must not move y")
	}
	s.VAlign = Middle
	if s.baseline(50) <= 50 {
		t.Error("Middle alignment must move the baseline down")
	}
}

func TestStyle(t *testing.T) {
	if Fill.fpdfStyle() != "F" || Stroke.fpdfStyle() != "D" || FillStroke.fpdfStyle() != "FD" {
		t.Error("Unexpected fpdf style strings")
	}
	if !FillStroke.fills() || !FillStroke.strokes() || Stroke.fills() || Fill.strokes() {
		t.Error("Unexpected fill/stroke flags")
	}
	if (Paint{}).lineWidth() != DefaultLineWidth {
		t.Error("Expected default line width for zero paint")
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	rec.FillRect(R(0, 0, 10, 10), red)
	rec.AddPage()
	rec.Text([]string{"a", "b"}, 15, 20, TextStyle{Size: 10, Weight: font.Bold})
	rec.Circle(Pt(5, 5), 2, Filled(gray))
	rec.SetPage(0)
	rec.Line(Pt(0, 1), Pt(10, 1), gray, 0.5)

	want := []Op{
		{Page: 0, Kind: OpFillRect, Rect: R(0, 0, 10, 10), Paint: Filled(red)},
		{Page: 1, Kind: OpText, Lines: []string{"a", "b"}, At: Pt(15, 20), Style: TextStyle{Size: 10, Weight: font.Bold}},
		{Page: 1, Kind: OpCircle, At: Pt(5, 5), Radius: 2, Paint: Filled(gray)},
		{Page: 0, Kind: OpLine, From: Pt(0, 1), To: Pt(10, 1), Paint: Stroked(gray, 0.5)},
	}

	if diff := cmp.Diff(want, rec.Ops(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Ops mismatch (-want +got):\n%s", diff)
	}
	if rec.PageCount() != 2 {
		t.Errorf("Expected 2 pages, got %d", rec.PageCount())
	}
	if got := rec.Texts(1); !cmp.Equal(got, []string{"a", "b"}) {
		t.Errorf("Unexpected texts %v", got)
	}
	if got := len(rec.OpsOn(0)); got != 2 {
		t.Errorf("Expected 2 ops on page 0, got %d", got)
	}

	rec.SetPage(7)
	rec.FillRect(R(0, 0, 1, 1), red)
	if op := rec.Ops()[4]; op.Page != 0 {
		t.Errorf("Out of range SetPage must be ignored, op landed on %d", op.Page)
	}

	rec.Reset()
	if len(rec.Ops()) != 0 || rec.PageCount() != 1 {
		t.Error("Reset did not clear the recorder")
	}
}

func TestRecorder_TextCopiesLines(t *testing.T) {
	rec := NewRecorder()
	lines := []string{"x"}
	rec.Text(lines, 0, 0, TextStyle{})
	lines[0] = "changed"

	if got := rec.Texts(-1); got[0] != "x" {
		t.Errorf("Recorder must not alias caller slices, got %q", got[0])
	}
}

func TestMulti(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	m := NewMulti(a, b)

	m.RoundedRect(R(1, 2, 3, 4), 1, Paint{Style: FillStroke, Fill: red, Stroke: gray})
	m.AddPage()
	m.StrokeRect(R(0, 0, 5, 5), gray, 0)
	m.Text([]string{"hi"}, 0, 0, TextStyle{Size: 8})
	m.SetPage(0)
	m.Circle(Pt(1, 1), 1, Filled(red))
	m.Line(Pt(0, 0), Pt(1, 1), red, 0)
	m.FillRect(R(0, 0, 1, 1), red)

	if diff := cmp.Diff(a.Ops(), b.Ops()); diff != "" {
		t.Errorf("Targets diverged:\n%s", diff)
	}
	if m.PageCount() != 2 || a.PageCount() != 2 {
		t.Errorf("Expected 2 pages, got %d", m.PageCount())
	}
	if NewMulti().PageCount() != 0 {
		t.Error("Expected empty multi to report 0 pages")
	}
}

func TestPDF(t *testing.T) {
	c, err := NewPDF(DefaultPDFConfig())
	if err != nil {
		t.Fatalf("NewPDF failed: %v", err)
	}

	c.FillRect(R(0, 0, 210, 50), theme.RGB(30, 39, 46))
	c.Text([]string{"Report"}, 15, 32, TextStyle{Size: 24, Weight: font.Bold, Color: theme.RGB(255, 255, 255)})
	c.RoundedRect(R(15, 60, 180, 35), 3, Paint{Style: FillStroke, Fill: theme.RGB(255, 255, 255), Stroke: gray})
	c.Circle(Pt(18, 100), 2.4, Filled(red))
	c.AddPage()
	c.Line(Pt(15, 30), Pt(195, 30), gray, 0.5)
	c.StrokeRect(R(15, 40, 3, 3), gray, 0)

	if c.PageCount() != 2 {
		t.Errorf("Expected 2 pages, got %d", c.PageCount())
	}
	for p := 0; p < c.PageCount(); p++ {
		c.SetPage(p)
		c.Text([]string{"1 / 2"}, 195, 287, TextStyle{Size: 8, Align: AlignRight})
	}

	data, err := c.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("Expected PDF header, got %q", data[:8])
	}
}

func TestPDF_Deterministic(t *testing.T) {
	build := func() []byte {
		c, err := NewPDF(DefaultPDFConfig())
		if err != nil {
			t.Fatalf("NewPDF failed: %v", err)
		}
		c.Text([]string{"same input"}, 15, 20, TextStyle{Size: 10})
		data, err := c.Bytes()
		if err != nil {
			t.Fatalf("Bytes failed: %v", err)
		}
		return data
	}

	if !bytes.Equal(build(), build()) {
		t.Error("Expected identical bytes for identical input")
	}
}

func TestPDF_InvalidMetrics(t *testing.T) {
	cfg := DefaultPDFConfig()
	cfg.Metrics = layout.PageMetrics{Width: 10, Height: 10, Margin: 10, TopMargin: 10}
	if _, err := NewPDF(cfg); err == nil {
		t.Error("Expected error for unusable metrics")
	}
}

func TestRaster(t *testing.T) {
	cfg := DefaultRasterConfig()
	cfg.PixelsPerMM = 1
	r, err := NewRaster(cfg)
	if err != nil {
		t.Fatalf("NewRaster failed: %v", err)
	}

	r.FillRect(R(0, 0, 210, 50), red)
	r.Text([]string{"hello"}, 105, 30, TextStyle{Size: 12, Align: AlignCenter})
	r.AddPage()
	r.RoundedRect(R(15, 15, 50, 20), 2, Paint{Style: FillStroke, Fill: gray, Stroke: red})
	r.Circle(Pt(30, 60), 3, Stroked(red, 0.5))
	r.Line(Pt(0, 80), Pt(100, 80), gray, 1)
	r.StrokeRect(R(10, 90, 5, 5), gray, 0)

	if r.PageCount() != 2 {
		t.Fatalf("Expected 2 pages, got %d", r.PageCount())
	}

	var buf bytes.Buffer
	if err := r.EncodePNG(0, &buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Invalid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 210 || b.Dy() != 297 {
		t.Errorf("Expected 210x297 image, got %dx%d", b.Dx(), b.Dy())
	}

	rr, gg, bb, _ := img.At(5, 5).RGBA()
	if rr>>8 != 255 || gg>>8 != 0 || bb>>8 != 0 {
		t.Errorf("Expected banner pixel to be red, got %d %d %d", rr>>8, gg>>8, bb>>8)
	}

	if err := r.EncodePNG(5, &buf); err == nil {
		t.Error("Expected error for out of range page")
	}
}

func TestRaster_InvalidFont(t *testing.T) {
	cfg := DefaultRasterConfig()
	cfg.FontData = []byte("not a font")
	if _, err := NewRaster(cfg); err == nil {
		t.Error("Expected error for invalid font data")
	}
}
