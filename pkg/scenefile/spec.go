// Package scenefile reads YAML scene descriptions and builds them into
// scene trees with the layout, box, hit-area and tooltip packages.
//
// A description is a tree of nodes, each with a kind:
//
//	leaf       fixed-size rectangle, optionally filled
//	text       text leaf measured by the builder's metrics
//	truncated  text cut to maxWidth over maxLines
//	row, column, list, grid, wrap
//	           layouts over children, optionally styled
//	box        children decorated by style
//	borderbox  a border centred on a width x height rectangle
//
// Any node may be interactive, carry hit areas and own a tooltip.
package scenefile

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/layout"
	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
	"gitlab.com/tinyland/lab/boxkit/pkg/style"
	"gitlab.com/tinyland/lab/boxkit/pkg/text"
	"gitlab.com/tinyland/lab/boxkit/pkg/tooltip"
)

// File is a parsed scene description.
type File struct {
	Title string `yaml:"title"`
	Root  Spec   `yaml:"root"`
}

// Spec describes one node and its subtree.
type Spec struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`

	Width  float64      `yaml:"width"`
	Height float64      `yaml:"height"`
	Fill   *paint.Color `yaml:"fill"`
	Scale  float64      `yaml:"scale"`

	Text     string               `yaml:"text"`
	Color    *paint.Color         `yaml:"color"`
	MaxWidth float64              `yaml:"maxWidth"`
	Truncate text.TruncateOptions `yaml:",inline"`

	// Spacing is uniform when scalar. Rows use the column gap and
	// columns the row gap, so one pair can serve every layout.
	Spacing   layout.Spacing    `yaml:"spacing"`
	Align     geom.Alignment    `yaml:"align"`
	AlignX    geom.Alignment    `yaml:"alignX"`
	AlignY    geom.Alignment    `yaml:"alignY"`
	Columns   int               `yaml:"columns"`
	WrapWidth float64           `yaml:"wrapWidth"`
	Direction string            `yaml:"direction"`
	Style     *style.Options    `yaml:"style"`
	Border    *style.BorderSpec `yaml:"border"`
	Children  []Spec            `yaml:"children"`

	Interactive bool          `yaml:"interactive"`
	HitArea     []HitAreaSpec `yaml:"hitArea"`
	Tooltip     *TooltipSpec  `yaml:"tooltip"`
}

// HitAreaSpec describes a hit area over the node's own rectangle.
type HitAreaSpec struct {
	// Kind is rect, rounded or border.
	Kind   string  `yaml:"kind"`
	Width  float64 `yaml:"width"`
	Radius float64 `yaml:"radius"`
}

// TooltipSpec describes a tooltip. Unset fields fall back to the
// builder's defaults.
type TooltipSpec struct {
	Text    string `yaml:"text"`
	Content *Spec  `yaml:"content"`

	Placement       *tooltip.Placement      `yaml:"placement"`
	PositionTarget  *tooltip.PositionTarget `yaml:"positionTarget"`
	OffsetX         *float64                `yaml:"offsetX"`
	OffsetY         *float64                `yaml:"offsetY"`
	Delay           *time.Duration          `yaml:"delay"`
	StopPropagation *bool                   `yaml:"stopPropagation"`
	Style           *style.Options          `yaml:"style"`
	TextColor       *paint.Color            `yaml:"textColor"`
}

// options overlays the spec onto defaults.
func (t *TooltipSpec) options(defaults tooltip.Options) tooltip.Options {
	o := defaults
	if t.Placement != nil {
		o.Placement = *t.Placement
	}
	if t.PositionTarget != nil {
		o.PositionTarget = *t.PositionTarget
	}
	if t.OffsetX != nil {
		o.OffsetX = *t.OffsetX
	}
	if t.OffsetY != nil {
		o.OffsetY = *t.OffsetY
	}
	if t.Delay != nil {
		o.Delay = *t.Delay
	}
	if t.StopPropagation != nil {
		o.StopPropagation = t.StopPropagation
	}
	if t.Style != nil {
		o.Style = *t.Style
	}
	if t.TextColor != nil {
		o.TextColor = *t.TextColor
	}
	return o
}

// Parse decodes a scene description. Unknown fields are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("scenefile: decode: %w", err)
	}
	return &f, nil
}

// Load reads and parses a scene description file.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}
