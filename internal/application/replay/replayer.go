package replay

import (
	"time"

	"github.com/younwookim/platformer/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Next returns the controls for the current frame and advances.
// The second result is false once every frame has been played.
func (r *Replayer) Next() (system.Controls, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.Controls{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Controls(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Stage returns the world name the replay was recorded in
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData builds replay data that holds the same controls for
// every frame
func CreateTestReplayData(frames int, c system.Controls) ReplayData {
	data := ReplayData{
		Version:   Version,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = NewFrameInput(i, c)
	}

	return data
}
