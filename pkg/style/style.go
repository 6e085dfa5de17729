package style

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
)

// Default shadow parameters, used for `shadow: true` and for any field a
// shadow spec leaves at zero.
const (
	DefaultShadowStrength = 12
	DefaultShadowQuality  = 8
	shadowAlpha           = 0.5
)

// BorderSpec configures a box border.
type BorderSpec struct {
	Width  float64     `toml:"width" yaml:"width"`
	Color  paint.Color `toml:"color" yaml:"color"`
	Alpha  *float64    `toml:"alpha" yaml:"alpha"`
	Target paint.Side  `toml:"target" yaml:"target"`
}

// BackgroundSpec configures a box fill.
type BackgroundSpec struct {
	Color paint.Color `toml:"color" yaml:"color"`
	Alpha *float64    `toml:"alpha" yaml:"alpha"`
}

// ShadowSpec configures a drop shadow. The zero value is "no shadow";
// Shadow(true) enables it with defaults.
type ShadowSpec struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
	// Strength and Quality fall back to the defaults when nil; an
	// explicit zero is kept.
	Strength *float64 `toml:"strength" yaml:"strength"`
	Quality  *int     `toml:"quality" yaml:"quality"`
}

// Shadow is the boolean shorthand for a default shadow.
func Shadow(on bool) *ShadowSpec {
	return &ShadowSpec{Enabled: on}
}

// UnmarshalYAML accepts `true`/`false` or a mapping.
func (s *ShadowSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var on bool
		if err := value.Decode(&on); err != nil {
			return fmt.Errorf("style: shadow: %w", err)
		}
		*s = ShadowSpec{Enabled: on}
		return nil
	}
	type plain ShadowSpec
	v := plain{Enabled: true}
	if err := value.Decode(&v); err != nil {
		return fmt.Errorf("style: shadow: %w", err)
	}
	*s = ShadowSpec(v)
	return nil
}

// UnmarshalTOML accepts a boolean or a table.
func (s *ShadowSpec) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case bool:
		*s = ShadowSpec{Enabled: v}
	case map[string]any:
		*s = ShadowSpec{Enabled: true}
		if st, ok := tomlNumber(v["strength"]); ok {
			s.Strength = &st
		}
		if q, ok := tomlNumber(v["quality"]); ok {
			qi := int(q)
			s.Quality = &qi
		}
		if on, ok := v["enabled"].(bool); ok {
			s.Enabled = on
		}
	default:
		return fmt.Errorf("style: shadow must be a boolean or a table, got %T", data)
	}
	return nil
}

var (
	_ yaml.Unmarshaler = (*ShadowSpec)(nil)
	_ toml.Unmarshaler = (*ShadowSpec)(nil)
)

// Options is the public configuration surface of a Box. Every field is
// optional; the zero value decorates nothing.
type Options struct {
	Padding      Padding         `toml:"padding" yaml:"padding"`
	Border       *BorderSpec     `toml:"border" yaml:"border"`
	BorderRadius float64         `toml:"border_radius" yaml:"borderRadius"`
	Background   *BackgroundSpec `toml:"background" yaml:"background"`
	Shadow       *ShadowSpec     `toml:"shadow" yaml:"shadow"`
	// MinWidth and MinHeight bound the content size from below. Zero means
	// the content size is used as is.
	MinWidth  float64 `toml:"min_width" yaml:"minWidth"`
	MinHeight float64 `toml:"min_height" yaml:"minHeight"`
}

// Strength returns a pointer to v, for ShadowSpec.Strength.
func Strength(v float64) *float64 {
	return &v
}

// Quality returns a pointer to v, for ShadowSpec.Quality.
func Quality(v int) *int {
	return &v
}

// Alpha returns a pointer to v, for the optional alpha fields.
func Alpha(v float64) *float64 {
	return &v
}

// Resolved is a fully specified style. Nothing in it is optional.
type Resolved struct {
	Padding geom.Edges

	BorderWidth float64
	HasBorder   bool
	Border      paint.Stroke

	Radius float64

	HasBackground bool
	Background    paint.Fill

	HasShadow bool
	Shadow    paint.Shadow

	MinWidth, MinHeight float64
}

// Resolve fills every default and overlays the caller's fields.
func Resolve(o Options) Resolved {
	r := Resolved{
		Padding:   o.Padding.Edges(),
		Radius:    o.BorderRadius,
		MinWidth:  o.MinWidth,
		MinHeight: o.MinHeight,
	}

	if o.Border != nil {
		r.HasBorder = true
		r.BorderWidth = o.Border.Width
		r.Border = paint.Stroke{
			Color:  o.Border.Color,
			Alpha:  alphaOr(o.Border.Alpha, 1),
			Width:  o.Border.Width,
			Radius: o.BorderRadius,
			Side:   o.Border.Target,
		}
	}

	if o.Background != nil {
		r.HasBackground = true
		r.Background = paint.Fill{
			Color:  o.Background.Color,
			Alpha:  alphaOr(o.Background.Alpha, 1),
			Radius: o.BorderRadius,
		}
	}

	if o.Shadow != nil && o.Shadow.Enabled {
		r.HasShadow = true
		r.Shadow = paint.Shadow{
			Radius:   o.BorderRadius,
			Strength: DefaultShadowStrength,
			Quality:  DefaultShadowQuality,
			Alpha:    shadowAlpha,
		}
		if o.Shadow.Strength != nil {
			r.Shadow.Strength = max(*o.Shadow.Strength, 0)
		}
		if o.Shadow.Quality != nil {
			r.Shadow.Quality = max(*o.Shadow.Quality, 0)
		}
	}

	return r
}

func alphaOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
