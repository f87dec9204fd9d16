// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/platformer/internal/application/render"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Options configures a Playing scene beyond the world file
type Options struct {
	Stage      string // world name written into recordings
	RecordPath string // empty disables recording
	Debug      bool
	Log        *zap.Logger
}

// Playing is the main gameplay scene. It owns the world; the physics
// system is the only writer of the player and nothing writes platforms.
type Playing struct {
	world    *entity.World
	physics  *system.PhysicsSystem
	input    *system.InputSystem
	controls *system.ControlState
	renderer *render.Renderer

	showButtons bool
	debug       bool
	frame       uint64
	wasOnGround bool

	// Input recording
	recorder   *Recorder
	recordPath string

	log *zap.Logger
}

// New creates a new Playing scene from a validated world config
func New(cfg *config.WorldConfig, opts Options) (*Playing, error) {
	bindings, err := system.NewKeyBindings(cfg.Controls)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	world := system.LoadWorld(cfg)
	p := &Playing{
		world:    world,
		physics:  system.NewPhysicsSystem(cfg.Physics, world.Width),
		input:    system.NewInputSystem(bindings, system.NewButtons(cfg.Controls)),
		controls: system.NewControlState(),
		renderer: render.NewRenderer(render.Palette{
			Background:   cfg.Background.Color,
			Button:       cfg.Controls.ButtonColor.Color,
			ButtonActive: cfg.Controls.ButtonActive.Color,
		}),
		showButtons: cfg.Controls.ShowButtons,
		debug:       opts.Debug || cfg.Display.Debug,
		recordPath:  opts.RecordPath,
		log:         log,
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(opts.Stage)
		log.Info("recording enabled", zap.String("path", opts.RecordPath))
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}
	// F3: Toggle debug overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		p.debug = !p.debug
	}

	p.input.Poll(p.controls)
	p.Step(p.controls.Snapshot())

	return nil, nil // nil = stay on this scene
}

// Step advances the simulation one frame with the given controls
func (p *Playing) Step(c system.Controls) {
	if p.recorder != nil {
		p.recorder.RecordFrame(c)
	}

	player := p.world.Player
	p.physics.Advance(player, p.world.Platforms, c)
	p.frame++

	if player.OnGround != p.wasOnGround {
		if player.OnGround {
			p.log.Debug("landed", zap.Uint64("frame", p.frame), zap.Float64("x", player.X), zap.Float64("y", player.Y))
		} else {
			p.log.Debug("airborne", zap.Uint64("frame", p.frame), zap.Float64("dy", player.DY), zap.Bool("jump", c.Jump))
		}
		p.wasOnGround = player.OnGround
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	p.DrawTo(render.NewImageCanvas(screen))
}

// DrawTo renders the world, then the on-screen buttons, then the debug text
func (p *Playing) DrawTo(c render.Canvas) {
	p.renderer.Draw(c, p.world.Platforms, p.world.Player)

	if p.showButtons {
		p.renderer.DrawButtons(c, p.input.Buttons(), p.controls.Snapshot())
	}
	if p.debug {
		p.renderer.DrawDebug(c, p.world.Player, p.frame)
	}
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {
	p.log.Info("world ready",
		zap.Int("platforms", len(p.world.Platforms)),
		zap.Float64("width", p.world.Width),
		zap.Float64("height", p.world.Height),
		zap.Float64("gravity", p.physics.Gravity()))
}

// OnExit implements scene.Scene. Held controls are released and an active
// recording is stopped and flushed once.
func (p *Playing) OnExit() {
	p.controls.Reset()

	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.Stop()
		p.saveRecording()
	}
}

// SaveRecording writes the recording, if any, and reports failures
func (p *Playing) SaveRecording() error {
	if p.recorder == nil {
		return nil
	}

	filename := p.recordPath
	if filename == "" {
		filename = GenerateFilename()
	}
	if err := p.recorder.Save(filename); err != nil {
		return fmt.Errorf("save recording %s: %w", filename, err)
	}

	p.log.Info("recording saved", zap.String("path", filename), zap.Int("frames", p.recorder.FrameCount()))
	return nil
}

func (p *Playing) saveRecording() {
	err := p.SaveRecording()
	switch {
	case err == nil:
	case errors.Is(err, replay.ErrNoFrames):
		p.log.Warn("recording is empty, nothing saved")
	default:
		p.log.Error("failed to save recording", zap.Error(err))
	}
}

// World returns the simulated world
func (p *Playing) World() *entity.World {
	return p.world
}

// Controls returns the control state input sources write into
func (p *Playing) Controls() *system.ControlState {
	return p.controls
}

// Frame returns the number of simulated frames
func (p *Playing) Frame() uint64 {
	return p.frame
}

// Recorder returns the active recorder, or nil
func (p *Playing) Recorder() *Recorder {
	return p.recorder
}
