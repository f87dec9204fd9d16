package system

import (
	"math"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// PhysicsSystem integrates the player one fixed frame at a time.
// Constants are tuned for 60 updates per second; there is no delta time.
type PhysicsSystem struct {
	gravity    float64
	worldWidth float64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg config.PhysicsConfig, worldWidth float64) *PhysicsSystem {
	return &PhysicsSystem{
		gravity:    cfg.Gravity,
		worldWidth: worldWidth,
	}
}

// Gravity returns the per-frame downward acceleration
func (s *PhysicsSystem) Gravity() float64 {
	return s.gravity
}

// Advance moves the player by one frame. The step order matters; each
// step reads what the previous one wrote.
func (s *PhysicsSystem) Advance(player *entity.Player, platforms []entity.Platform, controls Controls) {
	// Right is assigned after left, so it wins when both are held
	player.DX = 0
	if controls.Left {
		player.DX = -player.Speed
	}
	if controls.Right {
		player.DX = player.Speed
	}

	// Gravity applies even at rest; the ground snap below cancels it
	player.DY += s.gravity
	player.Y += player.DY
	player.X += player.DX

	player.OnGround = false
	s.resolveVertical(player, platforms)

	if controls.Jump && player.OnGround {
		player.DY = player.JumpForce
		player.OnGround = false
	}

	player.X = clamp(player.X, 0, s.worldWidth-player.Width)
}

// resolveVertical snaps the player out of every overlapping platform along
// Y only. All platforms are visited; later ones see earlier corrections.
// There is no horizontal resolution, so sideways entry at DY == 0 is kept.
func (s *PhysicsSystem) resolveVertical(player *entity.Player, platforms []entity.Platform) {
	for i := range platforms {
		p := &platforms[i]
		if !entity.Overlaps(player.Bounds(), p.Rect) {
			continue
		}

		if player.DY > 0 {
			// Landed
			player.Y = p.Y - player.Height
			player.DY = 0
			player.OnGround = true
		} else if player.DY < 0 {
			// Head bump
			player.Y = p.Bottom()
			player.DY = 0
		}
	}
}

// clamp bounds v to [lo, hi]; lo wins if the range is empty
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
