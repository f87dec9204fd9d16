// Package game provides the frame scheduler: an ebiten.Game that runs one
// update and one draw of the current Scene per tick.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/platformer/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
// ebiten calls Update at the configured TPS and Draw after it; there is no
// stop condition besides closing the window.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	frames  uint64
	log     *zap.Logger
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, log *zap.Logger) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		log:     log,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update()
	if err != nil {
		g.log.Error("scene update failed", zap.Uint64("frame", g.frames), zap.Error(err))
		return err
	}
	g.frames++

	if next != nil {
		g.log.Debug("scene transition", zap.Uint64("frame", g.frames))
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the fixed logical screen size regardless of window size.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Frames returns the number of completed updates
func (g *Game) Frames() uint64 {
	return g.frames
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
