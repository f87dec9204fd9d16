package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a color.Color that reads and writes "#rrggbb" or "#rrggbbaa"
type Color struct {
	color.Color
}

// Hex parses a "#rrggbb" or "#rrggbbaa" string
func Hex(s string) (Color, error) {
	raw := strings.TrimPrefix(s, "#")
	if len(raw) != 6 && len(raw) != 8 {
		return Color{}, fmt.Errorf("invalid color format: %s", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(raw[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	g, err := parse(2)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	b, err := parse(4)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %s: %w", s, err)
	}

	a := uint8(255)
	if len(raw) == 8 {
		a, err = parse(6)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %s: %w", s, err)
		}
	}

	return Color{color.NRGBA{R: r, G: g, B: b, A: a}}, nil
}

// MustHex is Hex for compile-time constants; it panics on bad input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String formats the color as "#rrggbb", appending alpha only when not opaque
func (c Color) String() string {
	if c.Color == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := Hex(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
