package system

import "sync/atomic"

// Controls is the control intent for one frame
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
}

// ControlState holds the currently held controls.
// Each control is the last value written by any input source. Setters may
// be called from any goroutine; the simulation only reads via Snapshot.
type ControlState struct {
	left  atomic.Bool
	right atomic.Bool
	jump  atomic.Bool
}

// NewControlState creates a control state with nothing held
func NewControlState() *ControlState {
	return &ControlState{}
}

func (c *ControlState) SetLeft(held bool)  { c.left.Store(held) }
func (c *ControlState) SetRight(held bool) { c.right.Store(held) }
func (c *ControlState) SetJump(held bool)  { c.jump.Store(held) }

// Set writes a control by name. Unknown names are ignored.
func (c *ControlState) Set(control Control, held bool) {
	switch control {
	case ControlLeft:
		c.SetLeft(held)
	case ControlRight:
		c.SetRight(held)
	case ControlJump:
		c.SetJump(held)
	}
}

// Snapshot reads all three controls
func (c *ControlState) Snapshot() Controls {
	return Controls{
		Left:  c.left.Load(),
		Right: c.right.Load(),
		Jump:  c.jump.Load(),
	}
}

// Reset releases every control
func (c *ControlState) Reset() {
	c.SetLeft(false)
	c.SetRight(false)
	c.SetJump(false)
}

// Control names one of the three logical controls
type Control string

const (
	ControlLeft  Control = "left"
	ControlRight Control = "right"
	ControlJump  Control = "jump"
)

// Held reports whether control is held in the snapshot
func (c Controls) Held(control Control) bool {
	switch control {
	case ControlLeft:
		return c.Left
	case ControlRight:
		return c.Right
	case ControlJump:
		return c.Jump
	default:
		return false
	}
}
