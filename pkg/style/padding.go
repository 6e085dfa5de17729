// Package style holds the public decoration surface of a Box (padding,
// border, background, shadow and minimum size) and resolves it into one
// fully specified value before any geometry is computed.
package style

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
)

// Padding is CSS-style shorthand for the four inner offsets of a box.
//
//   - 1 value: all sides
//   - 2 values: [x, y]; x applies to left/right, y to top/bottom
//   - 3 values: [top, x, bottom]
//   - 4 values: [top, right, bottom, left]
//
// More than four values is a programmer error; the first four are used.
type Padding []float64

// Pad is shorthand for Padding{values...}.
func Pad(values ...float64) Padding {
	return Padding(values)
}

// Edges expands the shorthand into per-side values.
func (p Padding) Edges() geom.Edges {
	switch len(p) {
	case 0:
		return geom.Edges{}
	case 1:
		return geom.EdgeAll(p[0])
	case 2:
		return geom.EdgeXY(p[0], p[1])
	case 3:
		return geom.EdgeTRBL(p[0], p[1], p[2], p[1])
	case 4:
		return geom.EdgeTRBL(p[0], p[1], p[2], p[3])
	default:
		slog.Error("programmer error: style.Padding: expected 1 to 4 values", "numValues", len(p))
		return geom.EdgeTRBL(p[0], p[1], p[2], p[3])
	}
}

// IsZero reports whether every expanded side is zero.
func (p Padding) IsZero() bool {
	return p.Edges().IsZero()
}

// UnmarshalYAML accepts either a scalar or a sequence of numbers.
func (p *Padding) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("style: padding: %w", err)
		}
		*p = Padding{v}
		return nil
	case yaml.SequenceNode:
		var vs []float64
		if err := value.Decode(&vs); err != nil {
			return fmt.Errorf("style: padding: %w", err)
		}
		return p.set(vs)
	}
	return fmt.Errorf("style: padding must be a number or a list, line %d", value.Line)
}

// UnmarshalTOML accepts either a number or an array of numbers.
func (p *Padding) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case int64:
		*p = Padding{float64(v)}
	case float64:
		*p = Padding{v}
	case []any:
		vs := make([]float64, 0, len(v))
		for _, e := range v {
			f, ok := tomlNumber(e)
			if !ok {
				return fmt.Errorf("style: padding: %v is not a number", e)
			}
			vs = append(vs, f)
		}
		return p.set(vs)
	default:
		return fmt.Errorf("style: padding must be a number or an array, got %T", data)
	}
	return nil
}

var (
	_ yaml.Unmarshaler = (*Padding)(nil)
	_ toml.Unmarshaler = (*Padding)(nil)
)

func (p *Padding) set(vs []float64) error {
	if len(vs) > 4 {
		return fmt.Errorf("style: padding takes 1 to 4 values, got %d", len(vs))
	}
	if len(vs) == 0 {
		*p = nil
		return nil
	}
	*p = Padding(vs)
	return nil
}

func tomlNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
