package scene

import "gitlab.com/tinyland/lab/boxkit/pkg/geom"

// Transform maps a node's local coordinates into the root's coordinates.
type Transform struct {
	OffsetX, OffsetY float64
	ScaleX, ScaleY   float64
}

// identity is the root transform.
var identity = Transform{ScaleX: 1, ScaleY: 1}

// Apply maps a local point to root coordinates.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.OffsetX + x*t.ScaleX, t.OffsetY + y*t.ScaleY
}

// Invert maps a root point to local coordinates.
func (t Transform) Invert(x, y float64) (float64, float64) {
	return (x - t.OffsetX) / t.ScaleX, (y - t.OffsetY) / t.ScaleY
}

// child returns the transform of a child placed at (x, y) with scale.
func (t Transform) child(n *Node) Transform {
	sx, sy := n.Scale()
	ox, oy := t.Apply(n.X, n.Y)
	return Transform{OffsetX: ox, OffsetY: oy, ScaleX: t.ScaleX * sx, ScaleY: t.ScaleY * sy}
}

// Walk visits root and its descendants depth-first in paint order,
// passing each node's local-to-root transform. Returning false from fn
// skips that node's children.
func Walk(root *Node, fn func(n *Node, t Transform) bool) {
	if root == nil {
		return
	}
	walk(root, identity.child(root), fn)
}

func walk(n *Node, t Transform, fn func(*Node, Transform) bool) {
	if !fn(n, t) {
		return
	}
	for _, c := range n.Children {
		walk(c, t.child(c), fn)
	}
}

// Bounds returns every node's rectangle in root coordinates, keyed by
// node identity.
func Bounds(root *Node) map[*Node]geom.Rect {
	out := make(map[*Node]geom.Rect)
	Walk(root, func(n *Node, t Transform) bool {
		x, y := t.Apply(0, 0)
		out[n] = geom.Rect{X: x, Y: y, Width: n.Width * t.ScaleX, Height: n.Height * t.ScaleY}
		return true
	})
	return out
}

// LocalTransform returns the transform of target within root, and false
// if target is not in root's subtree.
func LocalTransform(root, target *Node) (Transform, bool) {
	var found Transform
	ok := false
	Walk(root, func(n *Node, t Transform) bool {
		if ok {
			return false
		}
		if n == target {
			found, ok = t, true
			return false
		}
		return true
	})
	return found, ok
}

// HitTest returns the topmost interactive node under the root-space
// point (x, y). Later siblings are above earlier ones and children above
// their parent. Returns nil when nothing interactive is hit.
func HitTest(root *Node, x, y float64) *Node {
	if root == nil {
		return nil
	}
	return hitTest(root, identity.child(root), x, y)
}

func hitTest(n *Node, t Transform, x, y float64) *Node {
	for i := len(n.Children) - 1; i >= 0; i-- {
		c := n.Children[i]
		if hit := hitTest(c, t.child(c), x, y); hit != nil {
			return hit
		}
	}
	if !n.Interactive {
		return nil
	}
	lx, ly := t.Invert(x, y)
	if n.Contains(lx, ly) {
		return n
	}
	return nil
}

// Snapshot is a plain copy of a subtree's geometry, used to compare
// layouts structurally.
type Snapshot struct {
	Name     string
	X, Y     float64
	Width    float64
	Height   float64
	Children []Snapshot
}

// Snap captures n's geometry and that of its descendants.
func Snap(n *Node) Snapshot {
	s := Snapshot{Name: n.Name, X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
	for _, c := range n.Children {
		s.Children = append(s.Children, Snap(c))
	}
	return s
}
