package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/younwookim/platformer/internal/application/system"
)

// Version is written into every replay file
const Version = "1.0"

// ErrNoFrames is returned when saving a replay that recorded nothing
var ErrNoFrames = errors.New("no frames to save")

// FrameInput records the control intent for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
}

// NewFrameInput captures controls as frame f
func NewFrameInput(f int, c system.Controls) FrameInput {
	return FrameInput{F: f, L: c.Left, R: c.Right, J: c.Jump}
}

// Controls returns the recorded intent
func (fi FrameInput) Controls() system.Controls {
	return system.Controls{Left: fi.L, Right: fi.R, Jump: fi.J}
}

// ReplayData contains all data needed to replay a session.
// The simulation is deterministic, so the world file and the frame inputs
// fully determine the outcome.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Save writes the replay data to a file as indented JSON
func Save(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}
