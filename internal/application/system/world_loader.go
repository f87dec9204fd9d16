package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// LoadWorld converts a WorldConfig into a fresh World.
// Platforms keep the order they have in the config.
func LoadWorld(cfg *config.WorldConfig) *entity.World {
	pc := cfg.Player
	player := entity.NewPlayer(pc.X, pc.Y, pc.Width, pc.Height, pc.Speed, pc.JumpForce, pc.Color.Color)

	platforms := make([]entity.Platform, 0, len(cfg.Platforms))
	for _, p := range cfg.Platforms {
		platforms = append(platforms, entity.NewPlatform(p.X, p.Y, p.Width, p.Height, p.Color.Color))
	}

	return &entity.World{
		Width:     float64(cfg.Display.ScreenWidth),
		Height:    float64(cfg.Display.ScreenHeight),
		Player:    player,
		Platforms: platforms,
	}
}
