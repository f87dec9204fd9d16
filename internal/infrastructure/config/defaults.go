package config

// Default returns the built-in world: a 640x360 surface, a ground strip
// and two floating ledges.
func Default() *WorldConfig {
	return &WorldConfig{
		Display: DisplayConfig{
			Title:        "Platformer",
			ScreenWidth:  640,
			ScreenHeight: 360,
			Scale:        2,
			Framerate:    60,
		},
		Physics: PhysicsConfig{
			Gravity: 0.5,
		},
		Player: PlayerConfig{
			X:         100,
			Y:         250,
			Width:     16,
			Height:    24,
			Speed:     5,
			JumpForce: -12,
			Color:     MustHex("#e74c3c"),
		},
		Platforms: []PlatformConfig{
			{Name: "ground", X: 0, Y: 300, Width: 640, Height: 60, Color: MustHex("#2ecc71")},
			{Name: "ledge-low", X: 200, Y: 250, Width: 80, Height: 20, Color: MustHex("#8a6b4d")},
			{Name: "ledge-high", X: 400, Y: 200, Width: 80, Height: 20, Color: MustHex("#8a6b4d")},
		},
		Background: MustHex("#1a1a2e"),
		Controls: ControlsConfig{
			Left:         []string{"A"},
			Right:        []string{"D"},
			Jump:         []string{"W", "Space"},
			ShowButtons:  true,
			ButtonColor:  MustHex("#ffffff40"),
			ButtonActive: MustHex("#ffffff90"),
			Buttons: []ButtonConfig{
				{Control: "left", Label: "<", X: 16, Y: 316, Width: 40, Height: 32},
				{Control: "right", Label: ">", X: 64, Y: 316, Width: 40, Height: 32},
				{Control: "jump", Label: "^", X: 584, Y: 316, Width: 40, Height: 32},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
