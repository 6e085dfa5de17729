package tooltip

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
	"gitlab.com/tinyland/lab/boxkit/pkg/style"
)

// fakeScheduler records scheduled calls and runs them on demand.
type fakeScheduler struct {
	calls []*fakeTimer
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{d: d, f: f}
	s.calls = append(s.calls, t)
	return t
}

// fireAll runs every scheduled call, stopped or not, the way a timer that
// already fired before Stop would.
func (s *fakeScheduler) fireAll() {
	for _, t := range s.calls {
		t.f()
	}
}

type counter struct{ shows, hides int }

func (c *counter) options(o Options) Options {
	o.OnShow = func(*Tooltip) { c.shows++ }
	o.OnHide = func(*Tooltip) { c.hides++ }
	return o
}

func newTarget() *scene.Node {
	return scene.NewLeaf("target", 100, 40)
}

func content() *scene.Node {
	return scene.NewLeaf("content", 20, 10)
}

func TestImmediateShow(t *testing.T) {
	var c counter
	target := newTarget()
	tip := New(target, content(), c.options(Options{}))
	assert.True(t, target.Interactive)

	stop := tip.PointerOver(Event{})
	assert.True(t, stop, "stopPropagation defaults to true")
	assert.Equal(t, Visible, tip.State())
	assert.True(t, target.HasChild(tip.Node()))
	assert.Equal(t, 1, c.shows)

	// bottom-center on the target
	assert.Equal(t, geom.Pt(40, 40), tip.Node().Frame().Min())

	tip.PointerOut()
	assert.Equal(t, Hidden, tip.State())
	assert.False(t, target.HasChild(tip.Node()))
	assert.Equal(t, 1, c.hides)
}

func TestLeaveBeforeDelayNeverShows(t *testing.T) {
	var c counter
	sched := &fakeScheduler{}
	target := newTarget()
	tip := New(target, content(), c.options(Options{Delay: 300 * time.Millisecond, Scheduler: sched}))

	tip.PointerOver(Event{})
	assert.Equal(t, PendingShow, tip.State())
	require.Len(t, sched.calls, 1)
	assert.Equal(t, 300*time.Millisecond, sched.calls[0].d)
	assert.False(t, target.HasChild(tip.Node()))

	tip.PointerOut()
	assert.True(t, sched.calls[0].stopped)

	// A callback racing the cancellation must still be ignored.
	sched.fireAll()
	assert.Equal(t, Hidden, tip.State())
	assert.False(t, target.HasChild(tip.Node()))
	assert.Zero(t, c.shows)
	assert.Zero(t, c.hides, "onHide only runs for a visible tooltip")
}

func TestDelayedShow(t *testing.T) {
	var c counter
	sched := &fakeScheduler{}
	target := newTarget()
	tip := New(target, content(), c.options(Options{Delay: time.Second, Scheduler: sched}))

	tip.PointerOver(Event{})
	tip.PointerOver(Event{})
	require.Len(t, sched.calls, 1, "re-entering while pending schedules nothing")

	sched.fireAll()
	assert.Equal(t, Visible, tip.State())
	assert.True(t, target.HasChild(tip.Node()))
	assert.Equal(t, 1, c.shows)

	tip.PointerOut()
	tip.PointerOut()
	assert.Equal(t, 1, c.hides, "leaving twice hides once")
}

func TestStaleTimerAfterReentry(t *testing.T) {
	sched := &fakeScheduler{}
	tip := New(newTarget(), content(), Options{Delay: time.Second, Scheduler: sched})

	tip.PointerOver(Event{})
	tip.PointerOut()
	tip.PointerOver(Event{})
	require.Len(t, sched.calls, 2)

	sched.calls[0].f()
	assert.Equal(t, PendingShow, tip.State(), "the first timer was cancelled")
	sched.calls[1].f()
	assert.Equal(t, Visible, tip.State())
}

func TestInlineSchedulerShows(t *testing.T) {
	var c counter
	var timer *fakeTimer
	inline := SchedulerFunc(func(d time.Duration, f func()) Timer {
		f()
		timer = &fakeTimer{d: d, f: f}
		return timer
	})
	target := newTarget()
	tip := New(target, content(), c.options(Options{Delay: time.Millisecond, Scheduler: inline}))

	done := make(chan struct{})
	go func() {
		tip.PointerOver(Event{})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("PointerOver blocked on a scheduler that fires inline")
	}

	assert.Equal(t, Visible, tip.State())
	assert.True(t, target.HasChild(tip.Node()))
	assert.Equal(t, 1, c.shows)
	assert.True(t, timer.stopped, "a timer that already fired is not kept")

	tip.PointerOut()
	assert.Equal(t, Hidden, tip.State())
	assert.Equal(t, 1, c.hides)
}

func TestStopPropagationOption(t *testing.T) {
	tip := New(newTarget(), content(), Options{StopPropagation: Bool(false)})
	assert.False(t, tip.PointerOver(Event{}))
}

func TestPlacementOnTarget(t *testing.T) {
	target := geom.Sz(100, 40)
	tipSize := geom.Sz(20, 10)
	want := map[Placement]geom.Point{
		PlacementTopLeft:      {X: 0, Y: -10},
		PlacementTopCenter:    {X: 40, Y: -10},
		PlacementTopRight:     {X: 80, Y: -10},
		PlacementLeft:         {X: -20, Y: 15},
		PlacementCenter:       {X: 40, Y: 15},
		PlacementRight:        {X: 100, Y: 15},
		PlacementBottomLeft:   {X: 0, Y: 40},
		PlacementBottomCenter: {X: 40, Y: 40},
		PlacementBottomRight:  {X: 100, Y: 40},
	}
	for _, p := range Placements {
		t.Run(p.String(), func(t *testing.T) {
			assert.Equal(t, want[p], OnTarget(p, target, tipSize))

			tip := New(newTarget(), content(), Options{Placement: p})
			tip.PointerOver(Event{X: 3, Y: 3})
			assert.Equal(t, want[p], tip.Node().Frame().Min())
		})
	}
}

func TestPlacementOnPointer(t *testing.T) {
	tipSize := geom.Sz(20, 10)
	want := map[Placement]geom.Point{
		PlacementTopLeft:      {X: 30, Y: 10},
		PlacementTopCenter:    {X: 40, Y: 10},
		PlacementTopRight:     {X: 50, Y: 10},
		PlacementLeft:         {X: 30, Y: 15},
		PlacementCenter:       {X: 40, Y: 15},
		PlacementRight:        {X: 50, Y: 15},
		PlacementBottomLeft:   {X: 30, Y: 20},
		PlacementBottomCenter: {X: 40, Y: 20},
		PlacementBottomRight:  {X: 50, Y: 20},
	}
	for _, p := range Placements {
		t.Run(p.String(), func(t *testing.T) {
			tip := New(newTarget(), content(), Options{Placement: p, PositionTarget: PositionTargetPointer})
			tip.PointerOver(Event{X: 50, Y: 20})
			assert.Equal(t, want[p], tip.Node().Frame().Min())
			assert.Equal(t, want[p], OnPointer(p, 50, 20, tipSize))
		})
	}
}

func TestOffsetAddedAfterPlacement(t *testing.T) {
	tip := New(newTarget(), content(), Options{Placement: PlacementTopLeft, OffsetX: 5, OffsetY: -2})
	tip.PointerOver(Event{})
	assert.Equal(t, geom.Pt(5, -12), tip.Node().Frame().Min())
}

func TestInverseScale(t *testing.T) {
	tip := New(newTarget(), content(), Options{
		Placement:       PlacementTopCenter,
		GetCurrentScale: func() (float64, float64) { return 2, 4 },
	})
	tip.PointerOver(Event{})

	n := tip.Node()
	sx, sy := n.Scale()
	assert.Equal(t, 0.5, sx)
	assert.Equal(t, 0.25, sy)
	assert.Equal(t, geom.Sz(10, 2.5), n.ScaledSize())
	assert.Equal(t, geom.Pt(45, -2.5), n.Frame().Min())
}

func TestStyledContent(t *testing.T) {
	tip := New(newTarget(), content(), Options{Style: style.Options{Padding: style.Pad(2)}})
	assert.Equal(t, geom.Sz(24, 14), tip.Node().Size())
	assert.Equal(t, NodeName, tip.Node().Name)
}

func TestNewText(t *testing.T) {
	tip := NewText(newTarget(), "hello", Options{Style: style.Options{Padding: style.Pad(1, 0)}})
	assert.Equal(t, geom.Sz(7, 1), tip.Node().Size())
}

func TestDestroyCancelsWithoutCallbacks(t *testing.T) {
	var c counter
	sched := &fakeScheduler{}
	target := newTarget()
	tip := New(target, content(), c.options(Options{Delay: time.Second, Scheduler: sched}))
	tip.PointerOver(Event{})
	tip.Destroy()
	sched.fireAll()
	assert.Equal(t, Hidden, tip.State())
	assert.Zero(t, c.shows)

	tip2 := New(target, content(), c.options(Options{}))
	tip2.PointerOver(Event{})
	tip2.Destroy()
	assert.False(t, target.HasChild(tip2.Node()))
	assert.Zero(t, c.hides)
	tip2.Destroy()
}

func TestClockSchedulerShowsAfterDelay(t *testing.T) {
	shown := make(chan struct{})
	tip := New(newTarget(), content(), Options{
		Delay:  5 * time.Millisecond,
		OnShow: func(*Tooltip) { close(shown) },
	})
	tip.PointerOver(Event{})
	select {
	case <-shown:
	case <-time.After(2 * time.Second):
		t.Fatal("tooltip never shown")
	}
	assert.Equal(t, Visible, tip.State())
}

func TestPlacementText(t *testing.T) {
	for _, p := range Placements {
		got, err := ParsePlacement(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := ParsePlacement("bottom-end")
	require.NoError(t, err)
	assert.Equal(t, PlacementBottomRight, got)
	_, err = ParsePlacement("nowhere")
	assert.Error(t, err)

	var o Options
	src := "placement: top-right\npositionTarget: pointer\ndelay: 250ms\nstopPropagation: false\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &o))
	assert.Equal(t, PlacementTopRight, o.Placement)
	assert.Equal(t, PositionTargetPointer, o.PositionTarget)
	assert.Equal(t, 250*time.Millisecond, o.Delay)
	require.NotNil(t, o.StopPropagation)
	assert.False(t, *o.StopPropagation)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending", fmt.Sprint(PendingShow))
}
