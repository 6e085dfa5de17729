package layout

import (
	"gitlab.com/tinyland/lab/boxkit/pkg/box"
	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
	"gitlab.com/tinyland/lab/boxkit/pkg/style"
)

// Options configures Row and Column.
type Options struct {
	// Spacing is the gap between consecutive children.
	Spacing float64 `toml:"spacing" yaml:"spacing"`
	// Align places children on the cross axis. Default start.
	Align geom.Alignment `toml:"align" yaml:"align"`
	// Style, when set, wraps the arranged children in a Box.
	Style *style.Options `toml:"style" yaml:"style"`
}

// Row arranges children left-to-right, aligning them vertically.
func Row(children []*scene.Node, opts Options) *scene.Node {
	return defaultEngine.Row(children, opts)
}

// Column arranges children top-to-bottom, aligning them horizontally.
func Column(children []*scene.Node, opts Options) *scene.Node {
	return defaultEngine.Column(children, opts)
}

// ListOptions configures List.
type ListOptions struct {
	Direction Direction
	Spacing   float64
	// Align applies only to vertical lists.
	Align geom.Alignment
}

// List is a Row or Column picked by direction. Horizontal lists are
// always start-aligned.
func List(children []*scene.Node, opts ListOptions) *scene.Node {
	return defaultEngine.List(children, opts)
}

// List builds a list using the engine's cache.
func (e *Engine) List(children []*scene.Node, opts ListOptions) *scene.Node {
	align := opts.Align
	if opts.Direction == Horizontal {
		align = geom.AlignStart
	}
	return e.linear("list", children, opts.Direction, Options{Spacing: opts.Spacing, Align: align})
}

// Row arranges children left-to-right using the engine's cache.
func (e *Engine) Row(children []*scene.Node, opts Options) *scene.Node {
	return e.linear("row", children, Horizontal, opts)
}

// Column arranges children top-to-bottom using the engine's cache.
func (e *Engine) Column(children []*scene.Node, opts Options) *scene.Node {
	return e.linear("column", children, Vertical, opts)
}

func (e *Engine) linear(name string, children []*scene.Node, dir Direction, opts Options) *scene.Node {
	a := e.arrangeLinear(sizesOf(children), dir, opts.Spacing, opts.Align)

	if opts.Style == nil {
		n := &scene.Node{Name: name, Width: a.Size.Width, Height: a.Size.Height}
		apply(n, children, a.Frames)
		e.trace(name, len(children), a.Size)
		return n
	}

	content := &scene.Node{Name: name + ".content", Width: a.Size.Width, Height: a.Size.Height}
	apply(content, children, a.Frames)
	return e.decorate(name, content, *opts.Style)
}

// decorate wraps content in a box and returns a container of the box's size.
func (e *Engine) decorate(name string, content *scene.Node, opts style.Options) *scene.Node {
	b := box.Wrap(content, opts)
	n := &scene.Node{Name: name, Width: b.Width, Height: b.Height}
	n.AddChild(b)
	e.trace(name, len(content.Children), n.Size())
	return n
}
