// Package paint describes what a scene node draws, without drawing it.
// Rendering backends switch on the concrete Paint type.
package paint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB colour, 0xRRGGBB.
type Color uint32

// RGB returns the 8-bit channels of c.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns c formatted as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// NRGBA converts c to an image/color value with the given alpha in [0, 1].
func (c Color) NRGBA(alpha float64) color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

// ParseColor parses "#RRGGBB", "RRGGBB" or "0xRRGGBB".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	if len(hex) != 6 {
		return 0, fmt.Errorf("paint: invalid colour %q (expected #RRGGBB)", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("paint: invalid colour %q: %w", s, err)
	}
	return Color(v), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Side selects which edges a border stroke covers.
type Side int

const (
	// SideAll draws an inner-aligned rounded rectangle (default).
	SideAll Side = iota
	SideTop
	SideRight
	SideBottom
	SideLeft
)

var sideNames = [...]string{"all", "top", "right", "bottom", "left"}

// String returns the configuration name of s.
func (s Side) String() string {
	if s >= 0 && int(s) < len(sideNames) {
		return sideNames[s]
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// ParseSide converts a side name; the empty string is SideAll.
func ParseSide(name string) (Side, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SideAll, nil
	}
	for i, n := range sideNames {
		if n == name {
			return Side(i), nil
		}
	}
	return SideAll, fmt.Errorf("paint: unknown border target %q", name)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	v, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Paint is implemented by every drawable description.
type Paint interface {
	isPaint()
}

// Fill paints the node's full rectangle with a solid colour.
type Fill struct {
	Color  Color
	Alpha  float64
	Radius float64
}

// Spacer occupies the node's rectangle without being visible. It gives a
// padded box its footprint.
type Spacer struct{}

// Stroke paints a border. SideAll strokes a rounded rectangle inside the
// node's bounds; a single side strokes a line on that outer edge.
type Stroke struct {
	Color  Color
	Alpha  float64
	Width  float64
	Radius float64
	Side   Side
	// Centered strokes the outline centred on the rectangle edge instead of
	// inside it.
	Centered bool
}

// Shadow paints a blurred, translucent duplicate of the node's rectangle.
type Shadow struct {
	Radius   float64
	Strength float64
	Quality  int
	Alpha    float64
}

// Text paints pre-measured text starting at the node's origin.
type Text struct {
	Content string
	Color   Color
}

func (Fill) isPaint()   {}
func (Spacer) isPaint() {}
func (Stroke) isPaint() {}
func (Shadow) isPaint() {}
func (Text) isPaint()   {}
