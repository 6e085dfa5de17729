// Package scene defines the rectangle tree that layout, decoration and
// hit-testing operate on. A Node carries only geometry, an ordered child
// list, and an optional paint description; it never draws itself.
package scene

import (
	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
)

// HitArea answers whether a point in a node's local space hits it.
type HitArea interface {
	Contains(x, y float64) bool
}

// Node is a rectangle with an ordered list of children. X and Y are
// relative to the parent. Width and Height are intrinsic for leaves and
// derived by the layout that constructed a composite.
type Node struct {
	Name string

	X, Y          float64
	Width, Height float64

	// ScaleX and ScaleY scale the node and its subtree. Zero means 1.
	ScaleX, ScaleY float64

	Children []*Node

	// Paint is what the node draws, if anything.
	Paint paint.Paint

	// Interactive nodes take part in hit-test dispatch. HitArea overrides
	// the default rectangle test.
	Interactive bool
	HitArea     HitArea

	parent *Node
}

// NewLeaf creates a node with an intrinsic size and no children.
func NewLeaf(name string, width, height float64) *Node {
	return &Node{Name: name, Width: width, Height: height}
}

// New creates a node of the given size owning children.
func New(name string, size geom.Size, children ...*Node) *Node {
	n := &Node{Name: name, Width: size.Width, Height: size.Height}
	n.AddChild(children...)
	return n
}

// Parent returns the node this node is attached to, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// AddChild appends children in order. A child attached elsewhere is
// detached first.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child == nil {
			continue
		}
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.Children = append(n.Children, child)
	}
}

// RemoveChild detaches child, preserving the order of the remaining
// children. Returns false if child was not attached to n.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// HasChild reports whether child is directly attached to n.
func (n *Node) HasChild(child *Node) bool {
	for _, c := range n.Children {
		if c == child {
			return true
		}
	}
	return false
}

// Size returns the unscaled width and height.
func (n *Node) Size() geom.Size {
	return geom.Size{Width: n.Width, Height: n.Height}
}

// Scale returns the effective scale factors.
func (n *Node) Scale() (sx, sy float64) {
	sx, sy = n.ScaleX, n.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// SetScale sets both scale factors.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX, n.ScaleY = sx, sy
}

// ScaledSize returns the node's extent in its parent's coordinates.
func (n *Node) ScaledSize() geom.Size {
	sx, sy := n.Scale()
	return geom.Size{Width: n.Width * sx, Height: n.Height * sy}
}

// Frame returns the node's rectangle in its parent's coordinates.
func (n *Node) Frame() geom.Rect {
	s := n.ScaledSize()
	return geom.Rect{X: n.X, Y: n.Y, Width: s.Width, Height: s.Height}
}

// Contains reports whether the local point (x, y) hits n.
func (n *Node) Contains(x, y float64) bool {
	if n.HitArea != nil {
		return n.HitArea.Contains(x, y)
	}
	return geom.Rect{Width: n.Width, Height: n.Height}.Contains(x, y)
}
