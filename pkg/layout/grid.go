package layout

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
	"gitlab.com/tinyland/lab/boxkit/pkg/style"
)

// Spacing is the pair of gaps used by a Grid.
type Spacing struct {
	Row    float64 `toml:"row" yaml:"row"`
	Column float64 `toml:"column" yaml:"column"`
}

// Uniform returns a Spacing with the same gap between rows and columns.
func Uniform(v float64) Spacing {
	return Spacing{Row: v, Column: v}
}

// UnmarshalYAML accepts a number or a {row, column} mapping.
func (s *Spacing) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var v float64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("layout: spacing: %w", err)
		}
		*s = Uniform(v)
		return nil
	}
	type plain Spacing
	var v plain
	if err := value.Decode(&v); err != nil {
		return fmt.Errorf("layout: spacing: %w", err)
	}
	*s = Spacing(v)
	return nil
}

// UnmarshalTOML accepts a number or a {row, column} table.
func (s *Spacing) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case int64:
		*s = Uniform(float64(v))
	case float64:
		*s = Uniform(v)
	case map[string]any:
		*s = Spacing{Row: number(v["row"]), Column: number(v["column"])}
	default:
		return fmt.Errorf("layout: spacing must be a number or a table, got %T", data)
	}
	return nil
}

var (
	_ yaml.Unmarshaler = (*Spacing)(nil)
	_ toml.Unmarshaler = (*Spacing)(nil)
)

func number(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// GridOptions configures Grid.
type GridOptions struct {
	// Columns is the number of children per row. Zero or negative puts
	// every child in a single row.
	Columns int `toml:"columns" yaml:"columns"`
	Spacing Spacing `toml:"spacing" yaml:"spacing"`
	// Align places each row horizontally within the grid's width.
	Align geom.Alignment `toml:"align" yaml:"align"`
	Style *style.Options `toml:"style" yaml:"style"`
}

// Grid chunks children into rows of opts.Columns, lays each row out as a
// Row with the column gap, and stacks the rows with the row gap. A short
// last row is sized by its own content, not padded.
func Grid(children []*scene.Node, opts GridOptions) *scene.Node {
	return defaultEngine.Grid(children, opts)
}

// Grid builds a grid using the engine's cache.
func (e *Engine) Grid(children []*scene.Node, opts GridOptions) *scene.Node {
	f := e.arrangeGrid(sizesOf(children), opts.Columns, opts.Spacing, opts.Align)

	content := &scene.Node{Name: "grid", Width: f.Size.Width, Height: f.Size.Height}
	f.build(content, "grid.row", children)
	if opts.Style == nil {
		e.trace("grid", len(children), f.Size)
		return content
	}
	content.Name = "grid.content"
	return e.decorate("grid", content, *opts.Style)
}

// ArrangeGrid computes a grid arrangement from child sizes.
func ArrangeGrid(sizes []geom.Size, columns int, spacing Spacing, align geom.Alignment) Flow {
	if columns <= 0 {
		columns = len(sizes)
	}
	var f Flow
	y := 0.0
	for start := 0; start < len(sizes); start += columns {
		end := min(start+columns, len(sizes))
		row := ArrangeLinear(sizes[start:end], Horizontal, spacing.Column, geom.AlignStart)
		f.Lines = append(f.Lines, Line{
			Frame:  geom.Rect{Y: y, Width: row.Size.Width, Height: row.Size.Height},
			Start:  start,
			End:    end,
			Frames: row.Frames,
		})
		f.Size.Width = math.Max(f.Size.Width, row.Size.Width)
		y += row.Size.Height + spacing.Row
	}
	if len(f.Lines) > 0 {
		f.Size.Height = y - spacing.Row
	}
	alignLines(f.Lines, align, f.Size.Width)
	return f
}

// alignLines sets each line's horizontal offset within width.
func alignLines(lines []Line, align geom.Alignment, width float64) {
	for i := range lines {
		lines[i].Frame.X = align.Offset(width, lines[i].Frame.Width)
	}
}
