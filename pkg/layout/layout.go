// Package layout arranges already-sized scene nodes. Every arrangement is
// computed by a pure function over child sizes and options, then written
// once onto the children of a freshly built container node.
//
// Layouts:
//   - Row / Column: sequential packing on one axis, cross-axis alignment
//   - List: Row or Column chosen by direction
//   - Grid: fixed column count, rows sized independently and stacked
//   - WrappedRow: greedy width-bounded rows, like CSS flex-wrap
//
// Layout is not incremental: relayout means building a new container.
// A container owns its children; passing the same node to two layouts
// moves it.
package layout

import (
	"math"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
)

// Direction controls the axis along which children are packed.
type Direction int

const (
	// Horizontal packs left-to-right (Row).
	Horizontal Direction = iota
	// Vertical packs top-to-bottom (Column).
	Vertical
)

// Arrangement is the output of a linear layout: the container size and
// one frame per child, in child order, relative to the container.
type Arrangement struct {
	Size   geom.Size
	Frames []geom.Rect
}

// Geometry maps each child to its rectangle within the container.
type Geometry map[*scene.Node]geom.Rect

// Geometry keys the frames by the children they were computed for.
func (a Arrangement) Geometry(children []*scene.Node) Geometry {
	g := make(Geometry, len(children))
	for i, c := range children {
		if i < len(a.Frames) {
			g[c] = a.Frames[i]
		}
	}
	return g
}

// ArrangeLinear packs sizes along dir. Each child's main-axis offset is
// the running sum of previous extents plus spacing; the container's main
// extent drops the trailing spacing and its cross extent is the largest
// child. Alignment then sets each child's cross-axis offset.
func ArrangeLinear(sizes []geom.Size, dir Direction, spacing float64, align geom.Alignment) Arrangement {
	if len(sizes) == 0 {
		return Arrangement{}
	}

	frames := make([]geom.Rect, len(sizes))
	offset := 0.0
	cross := 0.0
	for i, s := range sizes {
		main, c := axes(s, dir)
		frames[i] = place(dir, offset, 0, s)
		offset += main + spacing
		cross = math.Max(cross, c)
	}
	mainExtent := offset - spacing

	for i, s := range sizes {
		_, c := axes(s, dir)
		pos := align.Offset(cross, c)
		if dir == Horizontal {
			frames[i].Y = pos
		} else {
			frames[i].X = pos
		}
	}

	size := geom.Size{Width: mainExtent, Height: cross}
	if dir == Vertical {
		size = geom.Size{Width: cross, Height: mainExtent}
	}
	return Arrangement{Size: size, Frames: frames}
}

// axes splits s into its main and cross extents for dir.
func axes(s geom.Size, dir Direction) (main, cross float64) {
	if dir == Horizontal {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func place(dir Direction, main, cross float64, s geom.Size) geom.Rect {
	if dir == Horizontal {
		return geom.Rect{X: main, Y: cross, Width: s.Width, Height: s.Height}
	}
	return geom.Rect{X: cross, Y: main, Width: s.Width, Height: s.Height}
}

// sizesOf returns the scaled extents of nodes.
func sizesOf(nodes []*scene.Node) []geom.Size {
	sizes := make([]geom.Size, len(nodes))
	for i, n := range nodes {
		sizes[i] = n.ScaledSize()
	}
	return sizes
}

// apply writes frames onto nodes and attaches them to parent.
func apply(parent *scene.Node, nodes []*scene.Node, frames []geom.Rect) {
	for i, n := range nodes {
		n.X, n.Y = frames[i].X, frames[i].Y
	}
	parent.AddChild(nodes...)
}
