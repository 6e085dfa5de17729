package layout

import (
	"math"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
	"gitlab.com/tinyland/lab/boxkit/pkg/style"
)

// WrapOptions configures WrappedRow.
type WrapOptions struct {
	// WrapWidth bounds each row's width. Zero or negative is unbounded.
	WrapWidth float64 `toml:"wrap_width" yaml:"wrapWidth"`
	// Spacing separates items within a row and rows from each other.
	Spacing float64 `toml:"spacing" yaml:"spacing"`
	// AlignX places each row within the widest row.
	AlignX geom.Alignment `toml:"align_x" yaml:"alignX"`
	// AlignY places each item within its own row's height.
	AlignY geom.Alignment `toml:"align_y" yaml:"alignY"`
	Style  *style.Options `toml:"style" yaml:"style"`
}

// wrapConfig is WrapOptions with every default filled in.
type wrapConfig struct {
	wrapWidth float64
	spacing   float64
	alignX    geom.Alignment
	alignY    geom.Alignment
}

func resolveWrap(o WrapOptions) wrapConfig {
	c := wrapConfig{
		wrapWidth: math.Inf(1),
		spacing:   o.Spacing,
		alignX:    o.AlignX,
		alignY:    o.AlignY,
	}
	if o.WrapWidth > 0 {
		c.wrapWidth = o.WrapWidth
	}
	return c
}

// WrappedRow packs children greedily into rows no wider than WrapWidth,
// like CSS flex-wrap. A row always takes at least one child, so an
// oversized child gets a row of its own rather than being dropped.
func WrappedRow(children []*scene.Node, opts WrapOptions) *scene.Node {
	return defaultEngine.WrappedRow(children, opts)
}

// WrappedRow builds a wrapped row using the engine's cache.
func (e *Engine) WrappedRow(children []*scene.Node, opts WrapOptions) *scene.Node {
	f := e.arrangeWrap(sizesOf(children), resolveWrap(opts))

	content := &scene.Node{Name: "wrap", Width: f.Size.Width, Height: f.Size.Height}
	f.build(content, "wrap.row", children)
	if opts.Style == nil {
		e.trace("wrap", len(children), f.Size)
		return content
	}
	content.Name = "wrap.content"
	return e.decorate("wrap", content, *opts.Style)
}

// ArrangeWrap computes a wrapped-row arrangement from child sizes.
func ArrangeWrap(sizes []geom.Size, opts WrapOptions) Flow {
	return arrangeWrap(sizes, resolveWrap(opts))
}

func arrangeWrap(sizes []geom.Size, c wrapConfig) Flow {
	var f Flow
	start := 0
	rowWidth := 0.0
	y := 0.0

	closeRow := func(end int) {
		row := ArrangeLinear(sizes[start:end], Horizontal, c.spacing, c.alignY)
		f.Lines = append(f.Lines, Line{
			Frame:  geom.Rect{Y: y, Width: row.Size.Width, Height: row.Size.Height},
			Start:  start,
			End:    end,
			Frames: row.Frames,
		})
		f.Size.Width = math.Max(f.Size.Width, row.Size.Width)
		y += row.Size.Height + c.spacing
	}

	for i, s := range sizes {
		if i > start && rowWidth+s.Width+c.spacing > c.wrapWidth {
			closeRow(i)
			start = i
			rowWidth = 0
		}
		if i > start {
			rowWidth += c.spacing
		}
		rowWidth += s.Width
	}
	if start < len(sizes) {
		closeRow(len(sizes))
	}
	if len(f.Lines) > 0 {
		f.Size.Height = y - c.spacing
	}

	alignLines(f.Lines, c.alignX, f.Size.Width)
	return f
}
