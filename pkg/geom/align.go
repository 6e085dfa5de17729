package geom

import (
	"fmt"
	"strings"
)

// Alignment places an element on the cross axis of its container.
type Alignment int

const (
	// AlignStart pins the element to the container's leading edge (default).
	AlignStart Alignment = iota
	// AlignCenter centers the element.
	AlignCenter
	// AlignEnd pins the element to the trailing edge.
	AlignEnd
)

// String returns the configuration name of a.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment converts "start", "center" or "end" to an Alignment.
// The empty string maps to AlignStart.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "start":
		return AlignStart, nil
	case "center", "middle":
		return AlignCenter, nil
	case "end":
		return AlignEnd, nil
	}
	return AlignStart, fmt.Errorf("geom: unknown alignment %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML and YAML.
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Offset returns the leading offset of an element of extent child inside a
// container of extent container. Unknown values behave like AlignEnd.
func (a Alignment) Offset(container, child float64) float64 {
	switch a {
	case AlignStart:
		return 0
	case AlignCenter:
		return (container - child) / 2
	default:
		return container - child
	}
}
