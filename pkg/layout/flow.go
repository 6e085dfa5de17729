package layout

import (
	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
)

// Line is one row of a Grid or WrappedRow.
type Line struct {
	// Frame is the line's rectangle within the container.
	Frame geom.Rect
	// Start and End delimit the children in this line, [Start, End).
	Start, End int
	// Frames holds each child's rectangle within the line.
	Frames []geom.Rect
}

// Flow is the output of a multi-line layout.
type Flow struct {
	Size  geom.Size
	Lines []Line
}

// Geometry keys each child's rectangle, in container coordinates, by the
// child it was computed for.
func (f Flow) Geometry(children []*scene.Node) Geometry {
	g := make(Geometry, len(children))
	for _, l := range f.Lines {
		for i := l.Start; i < l.End && i < len(children); i++ {
			g[children[i]] = l.Frames[i-l.Start].Translate(l.Frame.X, l.Frame.Y)
		}
	}
	return g
}

// clone returns a deep copy so cached flows cannot be mutated.
func (f Flow) clone() Flow {
	out := Flow{Size: f.Size, Lines: make([]Line, len(f.Lines))}
	for i, l := range f.Lines {
		l.Frames = append([]geom.Rect(nil), l.Frames...)
		out.Lines[i] = l
	}
	return out
}

// build attaches one line node per line to parent, each holding its
// children at their in-line frames.
func (f Flow) build(parent *scene.Node, name string, children []*scene.Node) {
	for _, l := range f.Lines {
		line := &scene.Node{
			Name:   name,
			X:      l.Frame.X,
			Y:      l.Frame.Y,
			Width:  l.Frame.Width,
			Height: l.Frame.Height,
		}
		apply(line, children[l.Start:l.End], l.Frames)
		parent.AddChild(line)
	}
}
