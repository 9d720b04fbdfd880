package canvas

import "github.com/tsawler/folio/theme"

// Multi fans every primitive out to several canvases, so one layout pass
// can produce a PDF and its preview together.
type Multi struct {
	targets []Canvas
}

// NewMulti creates a fan-out canvas. The first target answers PageCount.
func NewMulti(targets ...Canvas) *Multi {
	return &Multi{targets: targets}
}

func (m *Multi) AddPage() {
	for _, t := range m.targets {
		t.AddPage()
	}
}

func (m *Multi) PageCount() int {
	if len(m.targets) == 0 {
		return 0
	}
	return m.targets[0].PageCount()
}

func (m *Multi) SetPage(page int) {
	for _, t := range m.targets {
		t.SetPage(page)
	}
}

func (m *Multi) FillRect(r Rect, c theme.Color) {
	for _, t := range m.targets {
		t.FillRect(r, c)
	}
}

func (m *Multi) StrokeRect(r Rect, c theme.Color, lineWidth float64) {
	for _, t := range m.targets {
		t.StrokeRect(r, c, lineWidth)
	}
}

func (m *Multi) RoundedRect(r Rect, radius float64, p Paint) {
	for _, t := range m.targets {
		t.RoundedRect(r, radius, p)
	}
}

func (m *Multi) Circle(center Point, radius float64, p Paint) {
	for _, t := range m.targets {
		t.Circle(center, radius, p)
	}
}

func (m *Multi) Line(from, to Point, c theme.Color, lineWidth float64) {
	for _, t := range m.targets {
		t.Line(from, to, c, lineWidth)
	}
}

func (m *Multi) Text(lines []string, x, y float64, s TextStyle) {
	for _, t := range m.targets {
		t.Text(lines, x, y, s)
	}
}
