package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Ints returns the components as ints, the form fpdf expects.
func (c Color) Ints() (int, int, int) {
	return int(c.R), int(c.G), int(c.B)
}

// ToRGBA converts to the image/color representation used by raster canvases.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses #rrggbb or rrggbb.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// UnmarshalYAML accepts either "#rrggbb" or a [r, g, b] sequence.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseHex(node.Value)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var parts []uint8
		if err := node.Decode(&parts); err != nil {
			return fmt.Errorf("invalid color components: %w", err)
		}
		if len(parts) != 3 {
			return fmt.Errorf("invalid color: want 3 components, got %d", len(parts))
		}
		*c = Color{R: parts[0], G: parts[1], B: parts[2]}
		return nil
	}
	return fmt.Errorf("invalid color at line %d", node.Line)
}

// MarshalYAML writes the color as #rrggbb.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}
