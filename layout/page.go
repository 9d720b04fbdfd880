package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidMetrics is returned when page metrics leave no room for content.
var ErrInvalidMetrics = errors.New("layout: invalid page metrics")

// PageMetrics describes the fixed page geometry in millimetres.
type PageMetrics struct {
	// Width and Height of the physical page
	Width  float64
	Height float64

	// Margin applies to the left, right and bottom edges
	Margin float64

	// TopMargin is where writing resumes after a page break
	TopMargin float64
}

// A4 returns A4 portrait metrics with a 15mm margin and a 20mm top margin
// for continuation pages.
func A4() PageMetrics {
	return PageMetrics{
		Width:     210,
		Height:    297,
		Margin:    15,
		TopMargin: 20,
	}
}

// ContentWidth returns the usable width between the side margins.
func (m PageMetrics) ContentWidth() float64 {
	return m.Width - 2*m.Margin
}

// Bottom returns the lowest y a block may reach before a break is needed.
func (m PageMetrics) Bottom() float64 {
	return m.Height - m.Margin
}

// ContentHeight returns the writable height of a continuation page.
func (m PageMetrics) ContentHeight() float64 {
	return m.Bottom() - m.TopMargin
}

// Validate checks that the metrics describe a usable page.
func (m PageMetrics) Validate() error {
	switch {
	case m.Width <= 0 || m.Height <= 0:
		return fmt.Errorf("%w: page size %.1fx%.1f", ErrInvalidMetrics, m.Width, m.Height)
	case m.Margin < 0:
		return fmt.Errorf("%w: negative margin %.1f", ErrInvalidMetrics, m.Margin)
	case m.ContentWidth() <= 0:
		return fmt.Errorf("%w: content width %.1f", ErrInvalidMetrics, m.ContentWidth())
	case m.TopMargin < m.Margin:
		return fmt.Errorf("%w: top margin %.1f below margin %.1f", ErrInvalidMetrics, m.TopMargin, m.Margin)
	case m.ContentHeight() <= 0:
		return fmt.Errorf("%w: content height %.1f", ErrInvalidMetrics, m.ContentHeight())
	}
	return nil
}
