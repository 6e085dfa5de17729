package geom

import "math"

// RoundedRect is a rectangle whose four corners share one radius.
type RoundedRect struct {
	Rect
	Radius float64
}

// NewRoundedRect creates a RoundedRect.
func NewRoundedRect(r Rect, radius float64) RoundedRect {
	return RoundedRect{Rect: r, Radius: radius}
}

// EffectiveRadius returns the radius clamped to [0, min(w, h)/2].
func (rr RoundedRect) EffectiveRadius() float64 {
	limit := math.Min(rr.Width, rr.Height) / 2
	return math.Max(0, math.Min(rr.Radius, limit))
}

// Contains reports whether (x, y) lies inside the rounded rectangle.
// All edges are inclusive. Points in a corner square are inside only when
// they fall within the quarter circle of that corner.
func (rr RoundedRect) Contains(x, y float64) bool {
	if rr.IsEmpty() {
		return false
	}
	if x < rr.X || x > rr.Right() || y < rr.Y || y > rr.Bottom() {
		return false
	}

	radius := rr.EffectiveRadius()
	if (y >= rr.Y+radius && y <= rr.Bottom()-radius) ||
		(x >= rr.X+radius && x <= rr.Right()-radius) {
		return true
	}

	r2 := radius * radius
	left, right := rr.X+radius, rr.Right()-radius
	top, bottom := rr.Y+radius, rr.Bottom()-radius
	for _, c := range [4]Point{{left, top}, {right, top}, {right, bottom}, {left, bottom}} {
		dx, dy := x-c.X, y-c.Y
		if dx*dx+dy*dy <= r2 {
			return true
		}
	}
	return false
}
