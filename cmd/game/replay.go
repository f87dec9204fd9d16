package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// replayResult is the world state after the last replayed frame
type replayResult struct {
	Stage  string
	Frames int
	Player entity.Player
}

// runReplay feeds every recorded frame through the simulation without a window
func runReplay(cfg *config.WorldConfig, path string, log *zap.Logger) (replayResult, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replayResult{}, fmt.Errorf("load replay %s: %w", path, err)
	}
	if data.Version != replay.Version {
		log.Warn("replay version mismatch", zap.String("file", data.Version), zap.String("expected", replay.Version))
	}

	return simulate(cfg, *data, log)
}

func simulate(cfg *config.WorldConfig, data replay.ReplayData, log *zap.Logger) (replayResult, error) {
	scene, err := playing.New(cfg, playing.Options{Log: log})
	if err != nil {
		return replayResult{}, err
	}

	r := replay.NewReplayer(data)
	log.Debug("replaying", zap.String("stage", r.Stage()), zap.Int("frames", r.TotalFrames()))
	for {
		c, ok := r.Next()
		if !ok {
			break
		}
		scene.Step(c)
	}

	return replayResult{
		Stage:  r.Stage(),
		Frames: r.CurrentFrame(),
		Player: scene.World().Player.Snapshot(),
	}, nil
}
