// Package box decorates a content subtree with padding, a border, a
// background fill and an optional drop shadow. A box never clips or
// scales its content; it only offsets it and grows its footprint.
package box

import (
	"math"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
	"gitlab.com/tinyland/lab/boxkit/pkg/style"
)

// Node names given to the parts of a box, useful when inspecting a tree.
const (
	NameBox        = "box"
	NameContent    = "box.content"
	NameShadow     = "box.shadow"
	NameBackground = "box.background"
	NameBorder     = "box.border"
)

// New wraps children in a content container and decorates it. The
// children keep their positions inside the content container.
//
// Paint order, bottom to top: shadow, background (or an invisible spacer
// when only padding or a minimum size is set), border, content.
func New(children []*scene.Node, opts style.Options) *scene.Node {
	return Decorate(children, style.Resolve(opts))
}

// Wrap is New for a single child.
func Wrap(child *scene.Node, opts style.Options) *scene.Node {
	return New([]*scene.Node{child}, opts)
}

// Decorate is New for an already resolved style.
func Decorate(children []*scene.Node, s style.Resolved) *scene.Node {
	content := scene.New(NameContent, ContentSize(children), children...)

	size := OuterSize(content.Size(), s)
	root := &scene.Node{Name: NameBox, Width: size.Width, Height: size.Height}

	if s.HasShadow {
		root.AddChild(&scene.Node{
			Name:   NameShadow,
			Width:  size.Width,
			Height: size.Height,
			Paint:  s.Shadow,
		})
	}

	if needsBackground(content.Size(), s) {
		content.X = s.Padding.Left
		content.Y = s.Padding.Top

		bg := &scene.Node{Name: NameBackground, Width: size.Width, Height: size.Height}
		if s.HasBackground {
			bg.Paint = s.Background
		} else {
			bg.Paint = paint.Spacer{}
		}
		root.AddChild(bg)
	}

	if s.HasBorder {
		root.AddChild(&scene.Node{
			Name:   NameBorder,
			Width:  size.Width,
			Height: size.Height,
			Paint:  s.Border,
		})
		dx, dy := ContentShift(s.Border.Side, s.BorderWidth)
		content.X += dx
		content.Y += dy
	}

	root.AddChild(content)
	return root
}

// OuterSize returns the footprint of a box around content of the given
// size: the content (grown to the minimum size) plus padding on each side
// plus the border width twice on each axis.
func OuterSize(content geom.Size, s style.Resolved) geom.Size {
	minW := s.MinWidth
	if minW == 0 {
		minW = content.Width
	}
	minH := s.MinHeight
	if minH == 0 {
		minH = content.Height
	}
	return geom.Size{
		Width:  math.Max(content.Width, minW) + s.Padding.Horizontal() + 2*s.BorderWidth,
		Height: math.Max(content.Height, minH) + s.Padding.Vertical() + 2*s.BorderWidth,
	}
}

// ContentShift returns how far a border on side pushes the content
// inward. Right and bottom lines sit on the outer edge and push nothing.
func ContentShift(side paint.Side, width float64) (dx, dy float64) {
	switch side {
	case paint.SideTop:
		return 0, width
	case paint.SideLeft:
		return width, 0
	case paint.SideRight, paint.SideBottom:
		return 0, 0
	default:
		return width, width
	}
}

// ContentSize returns the extent of children measured from the content
// origin, the way a plain container reports its size.
func ContentSize(children []*scene.Node) geom.Size {
	var bounds geom.Rect
	first := true
	for _, c := range children {
		if c == nil {
			continue
		}
		f := c.Frame()
		if first {
			bounds, first = f, false
			continue
		}
		x := math.Min(bounds.X, f.X)
		y := math.Min(bounds.Y, f.Y)
		right := math.Max(bounds.Right(), f.Right())
		bottom := math.Max(bounds.Bottom(), f.Bottom())
		bounds = geom.Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
	}
	return bounds.Size()
}

func needsBackground(content geom.Size, s style.Resolved) bool {
	return !s.Padding.IsZero() ||
		s.MinWidth > content.Width ||
		s.MinHeight > content.Height ||
		s.HasBackground
}
