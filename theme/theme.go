package theme

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/folio/font"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/text"
)

// Tone names one of the six semantic palette colors blocks refer to.
// The zero value is Gray, the neutral fallback.
type Tone int

const (
	Gray Tone = iota
	Primary
	Secondary
	Danger
	Warning
	Dark
)

var toneNames = map[Tone]string{
	Gray:      "gray",
	Primary:   "primary",
	Secondary: "secondary",
	Danger:    "danger",
	Warning:   "warning",
	Dark:      "dark",
}

// String returns the tone's configuration name.
func (t Tone) String() string {
	if name, ok := toneNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tone(%d)", int(t))
}

// ParseTone maps a configuration name to a tone. Unknown names map to Gray
// and report false.
func ParseTone(s string) (Tone, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range toneNames {
		if name == s {
			return t, true
		}
	}
	return Gray, false
}

// Palette holds every color the renderers draw with.
type Palette struct {
	Primary   Color `yaml:"primary"`
	Secondary Color `yaml:"secondary"`
	Danger    Color `yaml:"danger"`
	Warning   Color `yaml:"warning"`
	Dark      Color `yaml:"dark"`
	Gray      Color `yaml:"gray"`

	LightGray Color `yaml:"light_gray"`
	HeaderBg  Color `yaml:"header_bg"`
	White     Color `yaml:"white"`

	// Supporting neutrals
	Subtitle Color `yaml:"subtitle"`
	Border   Color `yaml:"border"`
	Divider  Color `yaml:"divider"`
	Footer   Color `yaml:"footer"`
	StatBg   Color `yaml:"stat_bg"`
	Checkbox Color `yaml:"checkbox"`
}

// DefaultPalette returns the report palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   RGB(0, 184, 148),   // #00b894 green
		Secondary: RGB(9, 132, 227),   // #0984e3 blue
		Danger:    RGB(214, 48, 49),   // #d63031 red
		Warning:   RGB(253, 203, 110), // #fdcb6e yellow
		Dark:      RGB(45, 52, 54),    // #2d3436
		Gray:      RGB(99, 110, 114),  // #636e72

		LightGray: RGB(241, 243, 245),
		HeaderBg:  RGB(30, 39, 46),
		White:     RGB(255, 255, 255),

		Subtitle: RGB(200, 200, 200),
		Border:   RGB(200, 200, 200),
		Divider:  RGB(235, 235, 235),
		Footer:   RGB(150, 150, 150),
		StatBg:   RGB(250, 250, 250),
		Checkbox: RGB(150, 150, 150),
	}
}

// Tone resolves a semantic tone. Unknown tones resolve to Gray.
func (p Palette) Tone(t Tone) Color {
	switch t {
	case Primary:
		return p.Primary
	case Secondary:
		return p.Secondary
	case Danger:
		return p.Danger
	case Warning:
		return p.Warning
	case Dark:
		return p.Dark
	}
	return p.Gray
}

// Page is the YAML form of the page geometry.
type Page struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Margin    float64 `yaml:"margin"`
	TopMargin float64 `yaml:"top_margin"`
}

// Theme is the static visual configuration of a render.
type Theme struct {
	Palette Palette `yaml:"palette"`
	Page    Page    `yaml:"page"`

	// LineHeightFactor multiplies font size to get baseline spacing
	LineHeightFactor float64 `yaml:"line_height_factor"`

	// FontFile is an optional TrueType font embedded into PDFs and used for
	// measurement. Without it the standard Helvetica metrics are used and
	// text outside Latin-1 cannot be displayed in the PDF.
	FontFile string `yaml:"font_file"`

	// FontFamily picks the core PDF font used without FontFile: helvetica
	// (default) or courier
	FontFamily string `yaml:"font_family"`

	// FallbackTitle names the output file when the title sanitises to nothing
	FallbackTitle string `yaml:"fallback_title"`

	// Placeholder is the empty-state text adapters use for missing sections
	Placeholder string `yaml:"placeholder"`
}

// Default returns the built-in theme: A4 portrait, 15mm margins, 1.6 line
// height.
func Default() *Theme {
	a4 := layout.A4()
	return &Theme{
		Palette: DefaultPalette(),
		Page: Page{
			Width:     a4.Width,
			Height:    a4.Height,
			Margin:    a4.Margin,
			TopMargin: a4.TopMargin,
		},
		LineHeightFactor: text.DefaultLineHeightFactor,
		FallbackTitle:    "리포트",
		Placeholder:      "해당 데이터가 없습니다.",
	}
}

// Load reads a YAML theme and overlays it on the defaults. A missing file
// yields the defaults.
func Load(path string) (*Theme, error) {
	t, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return t, err
}

// LoadFile is Load for a path that must exist. A missing file returns an
// error wrapping os.ErrNotExist.
func LoadFile(path string) (*Theme, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}

	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Metrics converts the page settings to layout metrics.
func (t *Theme) Metrics() layout.PageMetrics {
	return layout.PageMetrics{
		Width:     t.Page.Width,
		Height:    t.Page.Height,
		Margin:    t.Page.Margin,
		TopMargin: t.Page.TopMargin,
	}
}

// Validate checks the page geometry and line height.
func (t *Theme) Validate() error {
	if err := t.Metrics().Validate(); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	if t.LineHeightFactor <= 0 {
		return fmt.Errorf("invalid theme: line height factor %.2f", t.LineHeightFactor)
	}
	if _, ok := font.Core(t.FontFamily); !ok {
		return fmt.Errorf("invalid theme: unknown font family %q", t.FontFamily)
	}
	return nil
}

// CoreFont returns the standard metrics of FontFamily, Helvetica when it
// is unset or unknown.
func (t *Theme) CoreFont() *font.Standard {
	if std, ok := font.Core(t.FontFamily); ok {
		return std
	}
	return font.Helvetica()
}

// Clone returns an independent copy.
func (t *Theme) Clone() *Theme {
	c := *t
	return &c
}
