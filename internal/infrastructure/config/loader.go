package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Loader loads world configuration from YAML files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadWorld loads <name>.yaml on top of Default() and validates the result
func (l *Loader) LoadWorld(name string) (*WorldConfig, error) {
	path := name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Overlay merges the YAML file at path into cfg. Fields absent from the
// file keep their current values; a platform or button list present in the
// file replaces the whole list.
func Overlay(cfg *WorldConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// SaveTo writes the config to a specific path
func (c *WorldConfig) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the config for values the simulation cannot run with
func (c *WorldConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, d.ScreenWidth, d.ScreenHeight)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, d.Scale)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, d.Framerate)
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: player size %gx%g", ErrInvalidConfig, p.Width, p.Height)
	}
	if p.Width > float64(d.ScreenWidth) {
		return fmt.Errorf("%w: player wider than the world", ErrInvalidConfig)
	}
	if p.Color.Color == nil {
		return fmt.Errorf("%w: player color missing", ErrInvalidConfig)
	}

	if len(c.Platforms) == 0 {
		return fmt.Errorf("%w: no platforms", ErrInvalidConfig)
	}
	for i, pl := range c.Platforms {
		if pl.Width < 0 || pl.Height < 0 {
			return fmt.Errorf("%w: platform %d has negative size", ErrInvalidConfig, i)
		}
		if pl.Color.Color == nil {
			return fmt.Errorf("%w: platform %d color missing", ErrInvalidConfig, i)
		}
	}

	for i, b := range c.Controls.Buttons {
		switch b.Control {
		case "left", "right", "jump":
		default:
			return fmt.Errorf("%w: button %d control %q", ErrInvalidConfig, i, b.Control)
		}
	}

	return nil
}
