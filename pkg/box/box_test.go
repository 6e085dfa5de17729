package box

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
	"gitlab.com/tinyland/lab/boxkit/pkg/style"
)

// part returns the first direct child of n with the given name.
func part(n *scene.Node, name string) *scene.Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func names(n *scene.Node) []string {
	out := make([]string, len(n.Children))
	for i, c := range n.Children {
		out[i] = c.Name
	}
	return out
}

func TestBoxWithoutStyleIsTransparent(t *testing.T) {
	b := Wrap(scene.NewLeaf("leaf", 30, 20), style.Options{})
	assert.Equal(t, geom.Sz(30, 20), b.Size())
	assert.Equal(t, []string{NameContent}, names(b))
	assert.Equal(t, geom.Point{}, part(b, NameContent).Frame().Min())
}

func TestBoxPadding(t *testing.T) {
	b := Wrap(scene.NewLeaf("leaf", 100, 50), style.Options{Padding: style.Pad(10, 5)})

	assert.Equal(t, geom.Sz(120, 60), b.Size())
	assert.Equal(t, []string{NameBackground, NameContent}, names(b))
	assert.Equal(t, paint.Spacer{}, part(b, NameBackground).Paint)

	content := part(b, NameContent)
	assert.Equal(t, 10.0, content.X)
	assert.Equal(t, 5.0, content.Y)
}

func TestBoxMinimumSize(t *testing.T) {
	b := Wrap(scene.NewLeaf("leaf", 10, 10), style.Options{MinWidth: 40, MinHeight: 5})
	assert.Equal(t, geom.Sz(40, 10), b.Size())
	assert.NotNil(t, part(b, NameBackground), "a min-size excess still needs a spacer")
}

func TestBoxBorderShiftsContent(t *testing.T) {
	tests := []struct {
		side   paint.Side
		dx, dy float64
	}{
		{paint.SideAll, 3, 3},
		{paint.SideTop, 0, 3},
		{paint.SideLeft, 3, 0},
		{paint.SideRight, 0, 0},
		{paint.SideBottom, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			b := Wrap(scene.NewLeaf("leaf", 10, 10), style.Options{
				Border:  &style.BorderSpec{Width: 3, Target: tt.side},
				Padding: style.Pad(2),
			})
			assert.Equal(t, geom.Sz(20, 20), b.Size())

			border := part(b, NameBorder)
			require.NotNil(t, border)
			assert.Equal(t, geom.Sz(20, 20), border.Size())

			content := part(b, NameContent)
			assert.Equal(t, 2+tt.dx, content.X)
			assert.Equal(t, 2+tt.dy, content.Y)
		})
	}
}

func TestBoxPaintOrder(t *testing.T) {
	b := New([]*scene.Node{scene.NewLeaf("a", 5, 5)}, style.Options{
		Background: &style.BackgroundSpec{Color: 0x101010},
		Border:     &style.BorderSpec{Width: 1},
		Shadow:     style.Shadow(true),
	})
	assert.Equal(t, []string{NameShadow, NameBackground, NameBorder, NameContent}, names(b))

	shadow, ok := part(b, NameShadow).Paint.(paint.Shadow)
	require.True(t, ok)
	assert.Equal(t, float64(style.DefaultShadowStrength), shadow.Strength)
	assert.Equal(t, part(b, NameBackground).Size(), part(b, NameShadow).Size())
}

func TestBoxKeepsChildPositions(t *testing.T) {
	a := scene.NewLeaf("a", 10, 10)
	c := scene.NewLeaf("c", 10, 10)
	c.X, c.Y = 20, 5

	b := New([]*scene.Node{a, c}, style.Options{Padding: style.Pad(1)})
	assert.Equal(t, geom.Sz(32, 17), b.Size())
	assert.Equal(t, geom.NewRect(21, 6, 10, 10), scene.Bounds(b)[c])
}

func TestBorderOnlyCentersStroke(t *testing.T) {
	n := BorderOnly(geom.Sz(40, 20), style.BorderSpec{Width: 4, Color: 0xffffff})
	assert.Equal(t, geom.Sz(44, 24), n.Size())
	stroke := n.Paint.(paint.Stroke)
	assert.True(t, stroke.Centered)
	assert.Equal(t, 1.0, stroke.Alpha)
}

func TestStandaloneBorder(t *testing.T) {
	n := Border(geom.Sz(10, 10), style.BorderSpec{Width: 2, Target: paint.SideBottom}, 4)
	stroke := n.Paint.(paint.Stroke)
	assert.Equal(t, paint.SideBottom, stroke.Side)
	assert.Equal(t, 4.0, stroke.Radius)
}
