package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// KeyBindings maps physical keys to logical controls
type KeyBindings struct {
	keys map[ebiten.Key]Control
}

// NewKeyBindings parses the key names in cfg
func NewKeyBindings(cfg config.ControlsConfig) (*KeyBindings, error) {
	b := &KeyBindings{keys: make(map[ebiten.Key]Control)}

	bind := func(control Control, names []string) error {
		for _, name := range names {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return fmt.Errorf("%s binding %q: %w", control, name, err)
			}
			b.keys[key] = control
		}
		return nil
	}

	if err := bind(ControlLeft, cfg.Left); err != nil {
		return nil, err
	}
	if err := bind(ControlRight, cfg.Right); err != nil {
		return nil, err
	}
	if err := bind(ControlJump, cfg.Jump); err != nil {
		return nil, err
	}
	return b, nil
}

// Lookup returns the control bound to key
func (b *KeyBindings) Lookup(key ebiten.Key) (Control, bool) {
	c, ok := b.keys[key]
	return c, ok
}

// Apply writes a key press or release into cs.
// Returns false if the key is not bound.
func (b *KeyBindings) Apply(cs *ControlState, key ebiten.Key, pressed bool) bool {
	control, ok := b.Lookup(key)
	if !ok {
		return false
	}
	cs.Set(control, pressed)
	return true
}

// Button is an on-screen pointer control
type Button struct {
	Control Control
	Label   string
	Bounds  entity.Rect
}

// Contains reports whether the screen point lies inside the button
func (b Button) Contains(x, y float64) bool {
	r := b.Bounds
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// NewButtons builds the on-screen buttons from config
func NewButtons(cfg config.ControlsConfig) []Button {
	buttons := make([]Button, 0, len(cfg.Buttons))
	for _, bc := range cfg.Buttons {
		buttons = append(buttons, Button{
			Control: Control(bc.Control),
			Label:   bc.Label,
			Bounds:  entity.Rect{X: bc.X, Y: bc.Y, Width: bc.Width, Height: bc.Height},
		})
	}
	return buttons
}

// ApplyPointer writes a pointer press or release at x, y into cs.
// Only the buttons under the pointer are affected, so releasing outside
// a button leaves its control held.
func ApplyPointer(cs *ControlState, buttons []Button, x, y float64, pressed bool) bool {
	hit := false
	for _, b := range buttons {
		if b.Contains(x, y) {
			cs.Set(b.Control, pressed)
			hit = true
		}
	}
	return hit
}

// InputSystem turns ebiten key, mouse and touch edges into ControlState writes
type InputSystem struct {
	bindings *KeyBindings
	buttons  []Button

	// Scratch buffers reused across ticks
	keys    []ebiten.Key
	touches []ebiten.TouchID
}

// NewInputSystem creates a new input system
func NewInputSystem(bindings *KeyBindings, buttons []Button) *InputSystem {
	return &InputSystem{
		bindings: bindings,
		buttons:  buttons,
	}
}

// Buttons returns the on-screen buttons
func (s *InputSystem) Buttons() []Button {
	return s.buttons
}

// Poll applies this tick's press and release edges to cs
func (s *InputSystem) Poll(cs *ControlState) {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.bindings.Apply(cs, k, true)
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.bindings.Apply(cs, k, false)
	}

	if len(s.buttons) == 0 {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		ApplyPointer(cs, s.buttons, float64(x), float64(y), true)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		ApplyPointer(cs, s.buttons, float64(x), float64(y), false)
	}

	s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		x, y := ebiten.TouchPosition(id)
		ApplyPointer(cs, s.buttons, float64(x), float64(y), true)
	}
	s.touches = inpututil.AppendJustReleasedTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		ApplyPointer(cs, s.buttons, float64(x), float64(y), false)
	}
}
