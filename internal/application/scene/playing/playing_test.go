package playing

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// recordingCanvas captures the op sequence of a frame
type recordingCanvas struct {
	ops   []string
	fills []color.Color
}

func (r *recordingCanvas) Clear(c color.Color) { r.ops = append(r.ops, "clear") }

func (r *recordingCanvas) FillRect(x, y, w, h float64, c color.Color) {
	r.ops = append(r.ops, "fill")
	r.fills = append(r.fills, c)
}

func (r *recordingCanvas) Text(s string, x, y int) { r.ops = append(r.ops, "text") }

func createTestScene(t *testing.T, opts Options) *Playing {
	t.Helper()
	p, err := New(config.Default(), opts)
	require.NoError(t, err)
	return p
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = &Playing{}
}

func TestNew_BuildsWorld(t *testing.T) {
	p := createTestScene(t, Options{})

	w := p.World()
	require.NotNil(t, w)
	assert.Equal(t, 100.0, w.Player.X)
	assert.Equal(t, 250.0, w.Player.Y)
	assert.Len(t, w.Platforms, 3)
	assert.Nil(t, p.Recorder())
	assert.Equal(t, uint64(0), p.Frame())
}

func TestNew_BadBinding(t *testing.T) {
	cfg := config.Default()
	cfg.Controls.Left = []string{"NoSuchKey"}

	_, err := New(cfg, Options{})
	assert.Error(t, err)
}

func TestPlaying_StepSettlesAndWalks(t *testing.T) {
	p := createTestScene(t, Options{})

	for i := 0; i < 30; i++ {
		p.Step(system.Controls{})
	}
	player := p.World().Player
	require.True(t, player.OnGround)
	assert.Equal(t, 276.0, player.Y)

	for i := 0; i < 10; i++ {
		p.Step(system.Controls{Right: true})
	}
	assert.Equal(t, 150.0, player.X)
	assert.Equal(t, uint64(40), p.Frame())
}

func TestPlaying_ControlStateDrivesStep(t *testing.T) {
	p := createTestScene(t, Options{})

	p.Controls().SetLeft(true)
	p.Step(p.Controls().Snapshot())

	assert.Equal(t, 95.0, p.World().Player.X)
}

func TestPlaying_LogsGroundTransitions(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := createTestScene(t, Options{Log: zap.New(core)})

	for i := 0; i < 30; i++ {
		p.Step(system.Controls{})
	}
	p.Step(system.Controls{Jump: true})

	landed := logs.FilterMessage("landed").All()
	require.Len(t, landed, 1)
	assert.Equal(t, 276.0, landed[0].ContextMap()["y"])

	airborne := logs.FilterMessage("airborne").All()
	require.Len(t, airborne, 1)
	assert.Equal(t, true, airborne[0].ContextMap()["jump"])
}

func TestPlaying_DrawTo(t *testing.T) {
	t.Run("world and buttons", func(t *testing.T) {
		p := createTestScene(t, Options{})
		canvas := &recordingCanvas{}

		p.DrawTo(canvas)

		// clear, 3 platforms, player, then 3 buttons each with a label
		assert.Equal(t, []string{
			"clear", "fill", "fill", "fill", "fill",
			"fill", "text", "fill", "text", "fill", "text",
		}, canvas.ops)
		assert.Equal(t, p.World().Player.Color, canvas.fills[3])
	})

	t.Run("debug overlay last", func(t *testing.T) {
		cfg := config.Default()
		cfg.Controls.ShowButtons = false
		p, err := New(cfg, Options{Debug: true})
		require.NoError(t, err)

		canvas := &recordingCanvas{}
		p.DrawTo(canvas)

		assert.Equal(t, []string{"clear", "fill", "fill", "fill", "fill", "text"}, canvas.ops)
	})
}

func TestPlaying_Recording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	p := createTestScene(t, Options{Stage: "world", RecordPath: path})
	require.NotNil(t, p.Recorder())

	p.Step(system.Controls{Right: true})
	p.Step(system.Controls{Jump: true})
	p.Step(system.Controls{})
	require.NoError(t, p.SaveRecording())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "world", data.Stage)
	assert.Equal(t, []replay.FrameInput{
		{F: 0, R: true},
		{F: 1, J: true},
		{F: 2},
	}, data.Frames)
}

func TestPlaying_ReplayReproducesState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	live := createTestScene(t, Options{RecordPath: path})

	script := []system.Controls{}
	for i := 0; i < 20; i++ {
		script = append(script, system.Controls{})
	}
	for i := 0; i < 25; i++ {
		script = append(script, system.Controls{Right: true, Jump: i < 3})
	}
	for i := 0; i < 40; i++ {
		script = append(script, system.Controls{Left: i%3 == 0, Right: true})
	}
	for _, c := range script {
		live.Step(c)
	}
	require.NoError(t, live.SaveRecording())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)

	replayed := createTestScene(t, Options{})
	r := replay.NewReplayer(*data)
	for {
		c, ok := r.Next()
		if !ok {
			break
		}
		replayed.Step(c)
	}

	assert.Equal(t, *live.World().Player, *replayed.World().Player)
	assert.Equal(t, live.Frame(), replayed.Frame())
}

func TestPlaying_SaveRecordingWithoutRecorder(t *testing.T) {
	p := createTestScene(t, Options{})
	assert.NoError(t, p.SaveRecording())
}

func TestPlaying_OnExitWithEmptyRecording(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	path := filepath.Join(t.TempDir(), "empty.json")
	p := createTestScene(t, Options{RecordPath: path, Log: zap.New(core)})

	p.OnExit()

	assert.Equal(t, 1, logs.FilterMessage("recording is empty, nothing saved").Len())
	assert.ErrorIs(t, p.SaveRecording(), replay.ErrNoFrames)
}

func TestPlaying_OnExitStopsRecordingAndReleasesControls(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	path := filepath.Join(t.TempDir(), "rec.json")
	p := createTestScene(t, Options{RecordPath: path, Log: zap.New(core)})

	p.Controls().SetRight(true)
	p.Step(p.Controls().Snapshot())
	p.Step(p.Controls().Snapshot())

	p.OnExit()

	assert.False(t, p.Recorder().IsRecording())
	assert.Equal(t, system.Controls{}, p.Controls().Snapshot())
	assert.Equal(t, 1, logs.FilterMessage("recording saved").Len())

	// Frames after exit are not recorded and a second exit does not save again
	p.Step(system.Controls{Jump: true})
	p.OnExit()
	assert.Equal(t, 2, p.Recorder().FrameCount())
	assert.Equal(t, 1, logs.FilterMessage("recording saved").Len())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 2)
}

func TestPlaying_OnEnterLogsWorld(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := createTestScene(t, Options{Log: zap.New(core)})

	p.OnEnter()

	entries := logs.FilterMessage("world ready").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(3), fields["platforms"])
	assert.Equal(t, 0.5, fields["gravity"])
}
