package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

func TestLoadWorld_Default(t *testing.T) {
	cfg := config.Default()
	world := LoadWorld(cfg)

	assert.Equal(t, 640.0, world.Width)
	assert.Equal(t, 360.0, world.Height)

	p := world.Player
	require.NotNil(t, p)
	assert.Equal(t, entity.Rect{X: 100, Y: 250, Width: 16, Height: 24}, p.Bounds())
	assert.Equal(t, 5.0, p.Speed)
	assert.Equal(t, -12.0, p.JumpForce)
	assert.False(t, p.OnGround)
	assert.Equal(t, cfg.Player.Color.Color, p.Color)

	require.Len(t, world.Platforms, 3)
	assert.Equal(t, entity.Rect{X: 0, Y: 300, Width: 640, Height: 60}, world.Platforms[0].Rect)
	assert.Equal(t, entity.Rect{X: 200, Y: 250, Width: 80, Height: 20}, world.Platforms[1].Rect)
	assert.Equal(t, entity.Rect{X: 400, Y: 200, Width: 80, Height: 20}, world.Platforms[2].Rect)
	assert.Equal(t, cfg.Platforms[1].Color.Color, world.Platforms[1].Color)
}

func TestLoadWorld_FreshStateEachCall(t *testing.T) {
	cfg := config.Default()
	a := LoadWorld(cfg)
	b := LoadWorld(cfg)

	a.Player.X = 0
	assert.Equal(t, 100.0, b.Player.X)
}

func TestLoadWorld_SettlesOnGround(t *testing.T) {
	cfg := config.Default()
	world := LoadWorld(cfg)
	sys := NewPhysicsSystem(cfg.Physics, world.Width)

	// Spawn is in the air above the ground; it should land and stay
	for i := 0; i < 60; i++ {
		sys.Advance(world.Player, world.Platforms, Controls{})
	}

	assert.True(t, world.Player.OnGround)
	assert.Equal(t, 276.0, world.Player.Y)
	assert.Equal(t, 100.0, world.Player.X)
}
