package theme

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name    string        `toml:"name"`
	Base    thTOMLBase    `toml:"base"`
	Box     thTOMLBox     `toml:"box"`
	Tooltip thTOMLTooltip `toml:"tooltip"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLBox struct {
	Surface string `toml:"surface"`
	Border  string `toml:"border"`
	Shadow  string `toml:"shadow"`
}

type thTOMLTooltip struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Border     string `toml:"border"`
}

// thField pairs a TOML key with its raw value and destination.
type thField struct {
	key string
	raw string
	dst *paint.Color
}

// LoadFromTOML parses a TOML theme definition from raw bytes. Every colour
// is required.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if tt.Name == "" {
		return Theme{}, fmt.Errorf("theme: missing required field %q", "name")
	}

	t := Theme{Name: tt.Name}
	for _, f := range []thField{
		{"base.background", tt.Base.Background, &t.Background},
		{"base.foreground", tt.Base.Foreground, &t.Foreground},
		{"base.dim", tt.Base.Dim, &t.Dim},
		{"base.accent", tt.Base.Accent, &t.Accent},
		{"box.surface", tt.Box.Surface, &t.Surface},
		{"box.border", tt.Box.Border, &t.Border},
		{"box.shadow", tt.Box.Shadow, &t.Shadow},
		{"tooltip.background", tt.Tooltip.Background, &t.TooltipBackground},
		{"tooltip.foreground", tt.Tooltip.Foreground, &t.TooltipForeground},
		{"tooltip.border", tt.Tooltip.Border, &t.TooltipBorder},
	} {
		if f.raw == "" {
			return Theme{}, fmt.Errorf("theme: missing required field %q", f.key)
		}
		c, err := paint.ParseColor(f.raw)
		if err != nil {
			return Theme{}, fmt.Errorf("theme: field %q: %w", f.key, err)
		}
		*f.dst = c
	}
	return t, nil
}

// LoadFile reads a TOML theme from path.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	return LoadFromTOML(data)
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background.Hex(),
			Foreground: t.Foreground.Hex(),
			Dim:        t.Dim.Hex(),
			Accent:     t.Accent.Hex(),
		},
		Box: thTOMLBox{
			Surface: t.Surface.Hex(),
			Border:  t.Border.Hex(),
			Shadow:  t.Shadow.Hex(),
		},
		Tooltip: thTOMLTooltip{
			Background: t.TooltipBackground.Hex(),
			Foreground: t.TooltipForeground.Hex(),
			Border:     t.TooltipBorder.Hex(),
		},
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}
