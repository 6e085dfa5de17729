package tooltip

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
)

// Placement is one of the nine anchor positions around a target or the
// pointer. The zero value is PlacementBottomCenter.
type Placement int

const (
	PlacementBottomCenter Placement = iota
	PlacementTopLeft
	PlacementTopCenter
	PlacementTopRight
	PlacementLeft
	PlacementCenter
	PlacementRight
	PlacementBottomLeft
	PlacementBottomRight
)

var placementNames = map[Placement]string{
	PlacementTopLeft:      "top-left",
	PlacementTopCenter:    "top-center",
	PlacementTopRight:     "top-right",
	PlacementLeft:         "left",
	PlacementCenter:       "center",
	PlacementRight:        "right",
	PlacementBottomLeft:   "bottom-left",
	PlacementBottomCenter: "bottom-center",
	PlacementBottomRight:  "bottom-right",
}

// Placements lists every placement in reading order.
var Placements = []Placement{
	PlacementTopLeft, PlacementTopCenter, PlacementTopRight,
	PlacementLeft, PlacementCenter, PlacementRight,
	PlacementBottomLeft, PlacementBottomCenter, PlacementBottomRight,
}

func (p Placement) String() string {
	if n, ok := placementNames[p]; ok {
		return n
	}
	return fmt.Sprintf("Placement(%d)", int(p))
}

// ParsePlacement converts a placement name. "bottom-start" and
// "bottom-end" are accepted for bottom-left and bottom-right, and the
// empty string is the default.
func ParsePlacement(s string) (Placement, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return PlacementBottomCenter, nil
	case "bottom-start":
		return PlacementBottomLeft, nil
	case "bottom-end":
		return PlacementBottomRight, nil
	}
	for p, n := range placementNames {
		if n == s {
			return p, nil
		}
	}
	return PlacementBottomCenter, fmt.Errorf("tooltip: unknown placement %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Placement) UnmarshalText(text []byte) error {
	v, err := ParsePlacement(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// PositionTarget selects what a tooltip is anchored to. The zero value is
// PositionTargetTarget.
type PositionTarget int

const (
	// PositionTargetTarget anchors to the target's own bounds.
	PositionTargetTarget PositionTarget = iota
	// PositionTargetPointer anchors to the pointer's position in the target.
	PositionTargetPointer
)

func (t PositionTarget) String() string {
	if t == PositionTargetPointer {
		return "pointer"
	}
	return "target"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *PositionTarget) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "target":
		*t = PositionTargetTarget
	case "pointer":
		*t = PositionTargetPointer
	default:
		return fmt.Errorf("tooltip: unknown position target %q", text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t PositionTarget) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// OnTarget returns the tooltip's top-left corner, in the target's local
// space, for a tooltip of size tip around a target of size target.
// Left and right columns of the top and bottom rows align with the
// target's edges; the middle row sits fully outside them. Bottom-right
// anchors at the target's outer corner.
func OnTarget(p Placement, target, tip geom.Size) geom.Point {
	centerX := target.Width/2 - tip.Width/2
	centerY := target.Height/2 - tip.Height/2

	switch p {
	case PlacementTopLeft:
		return geom.Pt(0, -tip.Height)
	case PlacementTopCenter:
		return geom.Pt(centerX, -tip.Height)
	case PlacementTopRight:
		return geom.Pt(target.Width-tip.Width, -tip.Height)
	case PlacementLeft:
		return geom.Pt(-tip.Width, centerY)
	case PlacementCenter:
		return geom.Pt(centerX, centerY)
	case PlacementRight:
		return geom.Pt(target.Width, centerY)
	case PlacementBottomLeft:
		return geom.Pt(0, target.Height)
	case PlacementBottomRight:
		return geom.Pt(target.Width, target.Height)
	default:
		return geom.Pt(centerX, target.Height)
	}
}

// OnPointer returns the tooltip's top-left corner for a tooltip of size
// tip placed around the pointer at (x, y). Each axis resolves to before,
// centred on, or after the pointer.
func OnPointer(p Placement, x, y float64, tip geom.Size) geom.Point {
	before := func(v, extent float64) float64 { return v - extent }
	centred := func(v, extent float64) float64 { return v - extent/2 }
	after := func(v, _ float64) float64 { return v }

	var fx, fy func(float64, float64) float64
	switch p {
	case PlacementTopLeft:
		fx, fy = before, before
	case PlacementTopCenter:
		fx, fy = centred, before
	case PlacementTopRight:
		fx, fy = after, before
	case PlacementLeft:
		fx, fy = before, centred
	case PlacementCenter:
		fx, fy = centred, centred
	case PlacementRight:
		fx, fy = after, centred
	case PlacementBottomLeft:
		fx, fy = before, after
	case PlacementBottomRight:
		fx, fy = after, after
	default:
		fx, fy = centred, after
	}
	return geom.Pt(fx(x, tip.Width), fy(y, tip.Height))
}
