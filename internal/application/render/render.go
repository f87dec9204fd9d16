// Package render draws the world as filled rectangles.
//
// Drawing goes through the Canvas interface so the frame can be rendered to
// an ebiten image or captured in tests. Nothing here mutates game state.
package render

import (
	"fmt"
	"image/color"

	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
)

// Canvas is a 2D surface that can be cleared and filled with rectangles
type Canvas interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	Text(s string, x, y int)
}

// Palette holds the non-entity colors
type Palette struct {
	Background   color.Color
	Button       color.Color
	ButtonActive color.Color
}

// Renderer draws frames onto a Canvas
type Renderer struct {
	palette Palette
}

// NewRenderer creates a renderer with the given palette
func NewRenderer(p Palette) *Renderer {
	return &Renderer{palette: p}
}

// Draw clears the surface, draws every platform in order, then the player.
// The player is drawn last so it is always on top.
func (r *Renderer) Draw(c Canvas, platforms []entity.Platform, player *entity.Player) {
	c.Clear(r.palette.Background)

	for _, p := range platforms {
		c.FillRect(p.X, p.Y, p.Width, p.Height, p.Color)
	}

	c.FillRect(player.X, player.Y, player.Width, player.Height, player.Color)
}

// DrawButtons draws the on-screen controls over the world.
// A button whose control is held uses the active color.
func (r *Renderer) DrawButtons(c Canvas, buttons []system.Button, held system.Controls) {
	for _, b := range buttons {
		fill := r.palette.Button
		if held.Held(b.Control) {
			fill = r.palette.ButtonActive
		}
		c.FillRect(b.Bounds.X, b.Bounds.Y, b.Bounds.Width, b.Bounds.Height, fill)

		if b.Label != "" {
			// Debug font glyphs are 6x16
			tx := int(b.Bounds.X + b.Bounds.Width/2 - float64(3*len(b.Label)))
			ty := int(b.Bounds.Y + b.Bounds.Height/2 - 8)
			c.Text(b.Label, tx, ty)
		}
	}
}

// DrawDebug prints the player's state in the top-left corner
func (r *Renderer) DrawDebug(c Canvas, player *entity.Player, frame uint64) {
	c.Text(DebugText(player, frame), 4, 4)
}

// DebugText formats the player's state for the debug overlay
func DebugText(player *entity.Player, frame uint64) string {
	return fmt.Sprintf("frame %d\npos %.1f, %.1f\nvel %.1f, %.1f\nground %t",
		frame, player.X, player.Y, player.DX, player.DY, player.OnGround)
}
