package entity

import "image/color"

// Rect is an axis-aligned rectangle. X, Y is the top-left corner; y grows downward.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Overlaps reports whether r and other share interior area.
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}

// Overlaps is the strict AABB test. Rectangles that only touch along an
// edge do not overlap. A zero-size rectangle never overlaps at an edge but
// does overlap a rectangle it lies strictly inside.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Platform is a static solid rectangle
type Platform struct {
	Rect
	Color color.Color
}

// NewPlatform creates a platform at x, y with the given size and fill color
func NewPlatform(x, y, w, h float64, c color.Color) Platform {
	return Platform{
		Rect:  Rect{X: x, Y: y, Width: w, Height: h},
		Color: c,
	}
}

// World is the complete simulation state.
// Platforms keep their construction order, which is both the collision
// check order and the draw order.
type World struct {
	Width     float64
	Height    float64
	Player    *Player
	Platforms []Platform
}
