// Package hitarea provides pointer-hit predicates for interactive nodes
// that are decoupled from what the node paints. Every area answers
// Contains in the node's local coordinates and is safe for concurrent use.
package hitarea

import (
	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
)

// HitArea is the contract shared by every area in this package. It is
// the same interface a scene.Node accepts in its HitArea field.
type HitArea = scene.HitArea

// Rect hits every point of a plain rectangle.
type Rect geom.Rect

// Contains implements HitArea.
func (r Rect) Contains(x, y float64) bool {
	return geom.Rect(r).Contains(x, y)
}

// RoundedRect hits every point of a rounded rectangle.
type RoundedRect geom.RoundedRect

// Contains implements HitArea.
func (r RoundedRect) Contains(x, y float64) bool {
	return geom.RoundedRect(r).Contains(x, y)
}

// BorderConfig describes the band a Border area covers.
type BorderConfig struct {
	Width  float64 `toml:"width" yaml:"width"`
	Radius float64 `toml:"radius" yaml:"radius"`
}

// Border hits only the ring between a rounded rectangle and the same
// rectangle inset by the border width on every side.
type Border struct {
	outer geom.RoundedRect
	inner geom.RoundedRect
}

// NewBorder builds a ring over dimension. Both outlines share the corner
// radius.
func NewBorder(dimension geom.Rect, cfg BorderConfig) Border {
	return Border{
		outer: geom.NewRoundedRect(dimension, cfg.Radius),
		inner: geom.NewRoundedRect(dimension.Inset(geom.EdgeAll(cfg.Width)), cfg.Radius),
	}
}

// Contains implements HitArea.
func (b Border) Contains(x, y float64) bool {
	return b.outer.Contains(x, y) && !b.inner.Contains(x, y)
}

// Outer returns the outer outline of the ring.
func (b Border) Outer() geom.RoundedRect { return b.outer }

// Inner returns the inner outline of the ring.
func (b Border) Inner() geom.RoundedRect { return b.inner }

// Compound hits a point when any of its members does.
type Compound []HitArea

// Union is shorthand for Compound{areas...}.
func Union(areas ...HitArea) Compound {
	return Compound(areas)
}

// Contains implements HitArea. An empty compound contains nothing.
func (c Compound) Contains(x, y float64) bool {
	for _, a := range c {
		if a != nil && a.Contains(x, y) {
			return true
		}
	}
	return false
}

var (
	_ HitArea = Rect{}
	_ HitArea = RoundedRect{}
	_ HitArea = Border{}
	_ HitArea = Compound(nil)
)
