package config

// WorldConfig is the root config for world.yaml
type WorldConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Platforms  []PlatformConfig `yaml:"platforms"`
	Background Color            `yaml:"background"`
	Controls   ControlsConfig   `yaml:"controls"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Debug        bool   `yaml:"debug"`
}

type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // units per frame squared
}

type PlayerConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	JumpForce float64 `yaml:"jump_force"`
	Color     Color   `yaml:"color"`
}

type PlatformConfig struct {
	Name   string  `yaml:"name,omitempty"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  Color   `yaml:"color"`
}

// ControlsConfig binds physical inputs to the three logical controls.
// Key names are ebiten key names ("A", "Space", "ArrowLeft", ...).
type ControlsConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Jump  []string `yaml:"jump"`

	ShowButtons  bool           `yaml:"show_buttons"`
	ButtonColor  Color          `yaml:"button_color"`
	ButtonActive Color          `yaml:"button_active_color"`
	Buttons      []ButtonConfig `yaml:"buttons"`
}

// ButtonConfig is an on-screen pointer control region in screen units
type ButtonConfig struct {
	Control string  `yaml:"control"` // left, right or jump
	Label   string  `yaml:"label"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}
