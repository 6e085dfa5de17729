package hitarea

import (
	"testing"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
)

type probe struct {
	x, y float64
	want bool
}

func check(t *testing.T, label string, a HitArea, probes []probe) {
	t.Helper()
	for _, p := range probes {
		if got := a.Contains(p.x, p.y); got != p.want {
			t.Errorf("%s.Contains(%v, %v) = %v, want %v", label, p.x, p.y, got, p.want)
		}
	}
}

func TestBorderRing(t *testing.T) {
	b := NewBorder(geom.NewRect(0, 0, 200, 200), BorderConfig{Width: 8})
	check(t, "border", b, []probe{
		{100, 100, false},
		{4, 100, true},
		{-1, 100, false},
		{196, 100, true},
		{100, 8.5, false},
		{100, 7.5, true},
	})
}

func TestBorderRingRounded(t *testing.T) {
	b := NewBorder(geom.NewRect(0, 0, 100, 100), BorderConfig{Width: 10, Radius: 30})
	check(t, "rounded border", b, []probe{
		{1, 1, false},  // cut away by the outer corner
		{50, 5, true},  // straight band
		{12, 12, true}, // corner band is wider than the straight band
		{45, 45, false},
	})
}

func TestBorderWiderThanRegion(t *testing.T) {
	// The inner rectangle collapses, so the whole region is band.
	b := NewBorder(geom.NewRect(0, 0, 10, 10), BorderConfig{Width: 8})
	check(t, "collapsed", b, []probe{{5, 5, true}, {11, 5, false}})
}

func TestCompoundIsUnion(t *testing.T) {
	c := Union(
		Rect(geom.NewRect(0, 0, 10, 10)),
		Rect(geom.NewRect(50, 50, 10, 10)),
	)
	check(t, "compound", c, []probe{
		{5, 5, true},
		{55, 55, true},
		{30, 30, false},
	})

	check(t, "empty compound", Compound(nil), []probe{{0, 0, false}})
	check(t, "nil member", Union(nil, Rect(geom.NewRect(0, 0, 1, 1))), []probe{{0.5, 0.5, true}})
}

func TestCompoundOfBorderAndRect(t *testing.T) {
	// A ring plus a handle in its middle, the shape a resizable frame uses.
	c := Union(
		NewBorder(geom.NewRect(0, 0, 100, 100), BorderConfig{Width: 4}),
		RoundedRect(geom.NewRoundedRect(geom.NewRect(40, 40, 20, 20), 10)),
	)
	check(t, "frame", c, []probe{
		{2, 50, true},
		{50, 50, true},
		{20, 20, false},
	})
}

func TestNodeUsesHitArea(t *testing.T) {
	n := scene.NewLeaf("frame", 200, 200)
	n.Interactive = true
	n.HitArea = NewBorder(geom.NewRect(0, 0, 200, 200), BorderConfig{Width: 8})
	root := scene.New("root", geom.Sz(200, 200), n)

	if hit := scene.HitTest(root, 100, 100); hit != nil {
		t.Errorf("interior should not hit, got %q", hit.Name)
	}
	if hit := scene.HitTest(root, 3, 100); hit != n {
		t.Errorf("ring should hit the frame, got %v", hit)
	}
}
