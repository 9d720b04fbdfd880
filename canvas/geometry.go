package canvas

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Pt creates a point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle in page coordinates. Y is the top
// edge; y grows downwards.
type Rect struct {
	X, Y float64
	W, H float64
}

// R creates a rectangle.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the right edge X coordinate
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Union returns the smallest rectangle containing both
func (r Rect) Union(other Rect) Rect {
	x := math.Min(r.X, other.X)
	y := math.Min(r.Y, other.Y)
	return Rect{
		X: x,
		Y: y,
		W: math.Max(r.Right(), other.Right()) - x,
		H: math.Max(r.Bottom(), other.Bottom()) - y,
	}
}

// Inset shrinks the rectangle by d on every side. Negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
