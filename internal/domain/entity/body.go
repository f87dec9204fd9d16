package entity

import "image/color"

// Body holds position and velocity.
// Velocity is in units per frame; there is no delta time.
type Body struct {
	X, Y   float64
	DX, DY float64

	OnGround bool
}

// Player represents the player entity
type Player struct {
	Body

	Width  float64
	Height float64

	Speed     float64 // horizontal units per frame while a direction is held
	JumpForce float64 // initial DY of a jump, negative is up

	Color color.Color
}

// NewPlayer creates a player at rest at x, y
func NewPlayer(x, y, w, h, speed, jumpForce float64, c color.Color) *Player {
	return &Player{
		Body:      Body{X: x, Y: y},
		Width:     w,
		Height:    h,
		Speed:     speed,
		JumpForce: jumpForce,
		Color:     c,
	}
}

// Bounds returns the player's current rectangle
func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Snapshot returns a copy of the player that shares no mutable state
func (p *Player) Snapshot() Player {
	return *p
}
