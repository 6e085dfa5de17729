package layout

import (
	"fmt"
	"reflect"
	"testing"

	"gitlab.com/tinyland/lab/boxkit/pkg/box"
	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
	"gitlab.com/tinyland/lab/boxkit/pkg/style"
)

// leaves builds sized leaf nodes from (width, height) pairs.
func leaves(dims ...[2]float64) []*scene.Node {
	nodes := make([]*scene.Node, len(dims))
	for i, d := range dims {
		nodes[i] = scene.NewLeaf(fmt.Sprintf("leaf%d", i), d[0], d[1])
	}
	return nodes
}

// assertFrames fails the test if the nodes' frames differ from want.
func assertFrames(t *testing.T, label string, nodes []*scene.Node, want []geom.Rect) {
	t.Helper()
	if len(nodes) != len(want) {
		t.Fatalf("%s: len(nodes)=%d, want %d", label, len(nodes), len(want))
	}
	for i, n := range nodes {
		if got := n.Frame(); got != want[i] {
			t.Errorf("%s[%d]: got %v, want %v", label, i, got, want[i])
		}
	}
}

func assertSize(t *testing.T, label string, n *scene.Node, w, h float64) {
	t.Helper()
	if n.Width != w || n.Height != h {
		t.Errorf("%s: size = %vx%v, want %vx%v", label, n.Width, n.Height, w, h)
	}
}

// --- Column ---

func TestColumnStacksChildren(t *testing.T) {
	children := leaves([2]float64{10, 10}, [2]float64{10, 20}, [2]float64{10, 10})
	col := Column(children, Options{})

	assertSize(t, "column", col, 10, 40)
	assertFrames(t, "column", col.Children, []geom.Rect{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 0, Y: 10, Width: 10, Height: 20},
		{X: 0, Y: 30, Width: 10, Height: 10},
	})
}

func TestColumnWithSpacing(t *testing.T) {
	children := leaves([2]float64{10, 10}, [2]float64{10, 20}, [2]float64{10, 10})
	col := Column(children, Options{Spacing: 5})

	assertSize(t, "column spacing", col, 10, 50)
	assertFrames(t, "column spacing", col.Children, []geom.Rect{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 0, Y: 15, Width: 10, Height: 20},
		{X: 0, Y: 40, Width: 10, Height: 10},
	})
}

func TestColumnAlignment(t *testing.T) {
	tests := []struct {
		align geom.Alignment
		want  []float64
	}{
		{geom.AlignStart, []float64{0, 0, 0}},
		{geom.AlignCenter, []float64{5, 0, 10}},
		{geom.AlignEnd, []float64{10, 0, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			children := leaves([2]float64{10, 10}, [2]float64{20, 10}, [2]float64{0, 10})
			col := Column(children, Options{Align: tt.align})
			assertSize(t, "column", col, 20, 30)
			for i, c := range col.Children {
				if c.X != tt.want[i] {
					t.Errorf("child %d x = %v, want %v", i, c.X, tt.want[i])
				}
			}
		})
	}
}

// --- Row ---

func TestRowPacksChildren(t *testing.T) {
	children := leaves([2]float64{10, 10}, [2]float64{15, 10}, [2]float64{10, 10})
	row := Row(children, Options{})

	assertSize(t, "row", row, 35, 10)
	assertFrames(t, "row", row.Children, []geom.Rect{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 10, Y: 0, Width: 15, Height: 10},
		{X: 25, Y: 0, Width: 10, Height: 10},
	})
}

func TestRowAlignsVertically(t *testing.T) {
	children := leaves([2]float64{10, 10}, [2]float64{10, 30})
	row := Row(children, Options{Spacing: 2, Align: geom.AlignEnd})

	assertSize(t, "row", row, 22, 30)
	assertFrames(t, "row", row.Children, []geom.Rect{
		{X: 0, Y: 20, Width: 10, Height: 10},
		{X: 12, Y: 0, Width: 10, Height: 30},
	})
}

func TestLinearEmpty(t *testing.T) {
	if n := Row(nil, Options{Spacing: 10}); n.Width != 0 || n.Height != 0 {
		t.Errorf("empty row: got %vx%v, want 0x0", n.Width, n.Height)
	}
	if n := Column(nil, Options{Spacing: 10}); n.Width != 0 || n.Height != 0 {
		t.Errorf("empty column: got %vx%v, want 0x0", n.Width, n.Height)
	}
}

func TestSingleChildIgnoresSpacing(t *testing.T) {
	row := Row(leaves([2]float64{7, 3}), Options{Spacing: 100, Align: geom.AlignCenter})
	assertSize(t, "single", row, 7, 3)
	assertFrames(t, "single", row.Children, []geom.Rect{{Width: 7, Height: 3}})
}

func TestRowUsesScaledExtents(t *testing.T) {
	children := leaves([2]float64{10, 10}, [2]float64{10, 10})
	children[0].SetScale(2, 2)
	row := Row(children, Options{})
	assertSize(t, "scaled", row, 30, 20)
	if children[1].X != 20 {
		t.Errorf("second child x = %v, want 20", children[1].X)
	}
}

func TestRowWithStyleWrapsInBox(t *testing.T) {
	children := leaves([2]float64{10, 10}, [2]float64{10, 10})
	row := Row(children, Options{Style: &style.Options{Padding: style.Pad(4)}})

	assertSize(t, "styled row", row, 28, 18)
	if len(row.Children) != 1 || row.Children[0].Name != box.NameBox {
		t.Fatalf("styled row should hold exactly one box, got %d children", len(row.Children))
	}
	b := scene.Bounds(row)
	if got := b[children[1]]; got != (geom.Rect{X: 14, Y: 4, Width: 10, Height: 10}) {
		t.Errorf("second child absolute frame = %v", got)
	}
}

// --- List ---

func TestListDirections(t *testing.T) {
	col := List(leaves([2]float64{10, 5}, [2]float64{20, 5}), ListOptions{Direction: Vertical, Spacing: 1, Align: geom.AlignEnd})
	assertSize(t, "list column", col, 20, 11)
	assertFrames(t, "list column", col.Children, []geom.Rect{
		{X: 10, Y: 0, Width: 10, Height: 5},
		{X: 0, Y: 6, Width: 20, Height: 5},
	})

	row := List(leaves([2]float64{10, 5}, [2]float64{20, 10}), ListOptions{Direction: Horizontal, Align: geom.AlignEnd})
	assertFrames(t, "list row", row.Children, []geom.Rect{
		{X: 0, Y: 0, Width: 10, Height: 5},
		{X: 10, Y: 0, Width: 20, Height: 10},
	})
}

// --- Pure arrangement ---

func TestArrangeLinearGeometryKeyedByChild(t *testing.T) {
	children := leaves([2]float64{10, 10}, [2]float64{15, 10})
	a := ArrangeLinear(sizesOf(children), Horizontal, 0, geom.AlignStart)
	g := a.Geometry(children)
	if g[children[1]] != (geom.Rect{X: 10, Width: 15, Height: 10}) {
		t.Errorf("geometry[1] = %v", g[children[1]])
	}
	// The pure function must not touch the nodes.
	if children[1].X != 0 {
		t.Errorf("ArrangeLinear mutated a child: x = %v", children[1].X)
	}
}

func TestNegativeSizesStayDeterministic(t *testing.T) {
	a := ArrangeLinear([]geom.Size{{Width: -5, Height: 2}, {Width: 4, Height: 2}}, Horizontal, 0, geom.AlignStart)
	if a.Frames[1].X != -5 || a.Size.Width != -1 {
		t.Errorf("degenerate arrangement = %+v", a)
	}
}

// --- Idempotence ---

func TestLayoutsAreIdempotent(t *testing.T) {
	build := func() []scene.Snapshot {
		dims := [][2]float64{{10, 10}, {10, 20}, {15, 10}, {10, 10}, {30, 5}}
		return []scene.Snapshot{
			scene.Snap(Row(leaves(dims...), Options{Spacing: 3, Align: geom.AlignCenter})),
			scene.Snap(Column(leaves(dims...), Options{Align: geom.AlignEnd, Style: &style.Options{Padding: style.Pad(1, 2)}})),
			scene.Snap(Grid(leaves(dims...), GridOptions{Columns: 2, Spacing: Uniform(4), Align: geom.AlignCenter})),
			scene.Snap(WrappedRow(leaves(dims...), WrapOptions{WrapWidth: 30, Spacing: 1, AlignY: geom.AlignEnd})),
		}
	}
	first, second := build(), build()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("layouts differ between identical runs:\n%+v\n%+v", first, second)
	}
}
