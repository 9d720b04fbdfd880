package layout

import (
	"errors"
	"math/rand"
	"testing"
)

// countingPager records how many pages were requested
type countingPager struct {
	added int
}

func (p *countingPager) AddPage() { p.added++ }

func TestNewCursor(t *testing.T) {
	c := NewCursor(A4(), nil)

	if c.Page() != 0 {
		t.Errorf("Expected page 0, got %d", c.Page())
	}
	if c.Y() != 15 {
		t.Errorf("Expected y at margin 15, got %f", c.Y())
	}
	if c.Remaining() != 267 {
		t.Errorf("Expected 267mm remaining, got %f", c.Remaining())
	}
}

func TestCursor_EnsureSpaceNoBreak(t *testing.T) {
	pager := &countingPager{}
	c := NewCursor(A4(), pager)
	c.Advance(45)

	if c.EnsureSpace(100) {
		t.Error("Expected no page break for a block that fits")
	}
	if pager.added != 0 {
		t.Errorf("Expected no pages added, got %d", pager.added)
	}
	if c.Y() != 60 {
		t.Errorf("Expected y unchanged at 60, got %f", c.Y())
	}
}

func TestCursor_EnsureSpaceBreaks(t *testing.T) {
	pager := &countingPager{}
	c := NewCursor(A4(), pager)
	c.Advance(250) // y = 265, bottom = 282

	if !c.EnsureSpace(20) {
		t.Fatal("Expected a page break")
	}
	if pager.added != 1 {
		t.Errorf("Expected 1 page added, got %d", pager.added)
	}
	if c.Page() != 1 {
		t.Errorf("Expected page 1, got %d", c.Page())
	}
	if c.Y() != 20 {
		t.Errorf("Expected y reset to top margin 20, got %f", c.Y())
	}
}

func TestCursor_ExactFitDoesNotBreak(t *testing.T) {
	c := NewCursor(A4(), nil)
	c.Advance(250) // y = 265

	if c.EnsureSpace(17) {
		t.Error("Expected a block ending exactly at the bottom margin to fit")
	}
	if !c.EnsureSpace(17.001) {
		t.Error("Expected a block crossing the bottom margin to break")
	}
}

func TestCursor_OversizedBlockOnFreshPage(t *testing.T) {
	pager := &countingPager{}
	c := NewCursor(A4(), pager)
	c.Advance(100)

	if !c.EnsureSpace(400) {
		t.Fatal("Expected a break before an oversized block on a used page")
	}
	if c.EnsureSpace(400) {
		t.Error("Expected no second break on a fresh page")
	}
	if pager.added != 1 {
		t.Errorf("Expected exactly 1 page added, got %d", pager.added)
	}
}

func TestCursor_NewPageAlwaysBreaks(t *testing.T) {
	pager := &countingPager{}
	c := NewCursor(A4(), pager)

	var seen []int
	c.OnBreak(func(page int) { seen = append(seen, page) })

	c.NewPage()
	c.NewPage()

	if c.Page() != 2 || pager.added != 2 {
		t.Errorf("Expected page 2 with 2 pages added, got page %d, added %d", c.Page(), pager.added)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("Expected break callbacks for pages 1 and 2, got %v", seen)
	}
}

func TestCursor_AdvanceIgnoresNegative(t *testing.T) {
	c := NewCursor(A4(), nil)
	c.Advance(10)
	c.Advance(-5)

	if c.Y() != 25 {
		t.Errorf("Expected y 25, got %f", c.Y())
	}
}

func TestCursor_Monotonic(t *testing.T) {
	m := A4()
	c := NewCursor(m, &countingPager{})
	rng := rand.New(rand.NewSource(42))

	prev := c.Position()
	for i := 0; i < 2000; i++ {
		h := rng.Float64() * 120
		c.EnsureSpace(h)

		pos := c.Position()
		if pos.Page < prev.Page {
			t.Fatalf("page decreased from %d to %d", prev.Page, pos.Page)
		}
		if pos.Page == prev.Page && pos.Y < prev.Y {
			t.Fatalf("y decreased within page %d: %f -> %f", pos.Page, prev.Y, pos.Y)
		}
		if pos.Y < m.Margin || pos.Y > m.Bottom() {
			t.Fatalf("y %f outside [%f, %f] after EnsureSpace", pos.Y, m.Margin, m.Bottom())
		}

		c.Advance(h)
		prev = c.Position()
	}
}

func TestPageMetrics(t *testing.T) {
	m := A4()

	if m.ContentWidth() != 180 {
		t.Errorf("Expected content width 180, got %f", m.ContentWidth())
	}
	if m.Bottom() != 282 {
		t.Errorf("Expected bottom 282, got %f", m.Bottom())
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Expected A4 to be valid, got %v", err)
	}
}

func TestPageMetrics_Validate(t *testing.T) {
	tests := []struct {
		name string
		m    PageMetrics
	}{
		{"zero size", PageMetrics{}},
		{"margins eat width", PageMetrics{Width: 20, Height: 100, Margin: 10, TopMargin: 10}},
		{"negative margin", PageMetrics{Width: 100, Height: 100, Margin: -1, TopMargin: 0}},
		{"top margin above margin", PageMetrics{Width: 100, Height: 100, Margin: 10, TopMargin: 5}},
		{"no content height", PageMetrics{Width: 100, Height: 40, Margin: 10, TopMargin: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if !errors.Is(err, ErrInvalidMetrics) {
				t.Errorf("Expected ErrInvalidMetrics, got %v", err)
			}
		})
	}
}
