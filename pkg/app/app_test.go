package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/boxkit/pkg/scenefile"
	"gitlab.com/tinyland/lab/boxkit/pkg/termrender"
	"gitlab.com/tinyland/lab/boxkit/pkg/tooltip"
)

const rowScene = `
title: swatches
root:
  kind: row
  spacing: 2
  children:
    - kind: leaf
      name: a
      width: 4
      height: 2
      tooltip: {text: "A"}
    - kind: leaf
      name: b
      width: 4
      height: 2
      tooltip: {text: "B", delay: 100ms}
`

const nestedScene = `
root:
  kind: box
  name: outer
  style: {padding: 1}
  tooltip: {text: "O"}
  children:
    - kind: leaf
      name: inner
      width: 2
      height: 1
      tooltip: {text: "I", stopPropagation: %s}
`

func parse(t *testing.T, src string) *scenefile.File {
	t.Helper()
	f, err := scenefile.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f
}

// helper to create a model with an uncoloured renderer.
func newTestModel(t *testing.T, src string) Model {
	t.Helper()
	m, err := New(parse(t, src), Options{
		Theme:    "default",
		Renderer: termrender.New(termrender.Options{Profile: termenv.Ascii}),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

// helper to send a message through Update and return the updated model.
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func move(m Model, x, y int) (Model, tea.Cmd) {
	return update(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
}

func tip(t *testing.T, m Model, name string) *tooltip.Tooltip {
	t.Helper()
	tt := m.Scene().TooltipFor(m.Scene().Named[name])
	if tt == nil {
		t.Fatalf("no tooltip on %q", name)
	}
	return tt
}

func TestNewBuildsScene(t *testing.T) {
	m := newTestModel(t, rowScene)
	if got := len(m.Scene().Tooltips); got != 2 {
		t.Errorf("expected 2 tooltips, got %d", got)
	}
	if m.Theme().Name != "default" {
		t.Errorf("expected default theme, got %q", m.Theme().Name)
	}
	if m.Init() != nil {
		t.Error("Init() should not schedule anything")
	}
}

func TestNewRejectsBadScene(t *testing.T) {
	_, err := New(parse(t, "root: {kind: hexagon}\n"), Options{})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestHoverShowsAndHidesTooltip(t *testing.T) {
	m := newTestModel(t, rowScene)
	a := tip(t, m, "a")

	m, _ = move(m, 1, 0)
	if a.State() != tooltip.Visible {
		t.Fatalf("expected a visible, got %v", a.State())
	}
	if m.Hovered() == nil || m.Hovered().Name != "a" {
		t.Errorf("expected hovered a, got %v", m.Hovered())
	}
	if !strings.Contains(m.View(), "A") {
		t.Errorf("view does not show the tooltip:\n%s", m.View())
	}

	m, _ = move(m, 1, 6)
	if a.State() != tooltip.Hidden {
		t.Errorf("expected a hidden after leaving, got %v", a.State())
	}
	if m.Hovered() != nil {
		t.Errorf("expected nothing hovered, got %q", m.Hovered().Name)
	}
}

func TestDelayedTooltipFiresThroughUpdate(t *testing.T) {
	m := newTestModel(t, rowScene)
	b := tip(t, m, "b")

	m, cmd := move(m, 7, 0)
	if b.State() != tooltip.PendingShow {
		t.Fatalf("expected pending, got %v", b.State())
	}
	if cmd == nil {
		t.Fatal("expected a scheduled command")
	}
	if m.sched.Pending() != 1 {
		t.Fatalf("expected 1 pending callback, got %d", m.sched.Pending())
	}

	m, _ = update(m, FireEvent{ID: 1})
	if b.State() != tooltip.Visible {
		t.Errorf("expected visible after fire, got %v", b.State())
	}
	if m.sched.Pending() != 0 {
		t.Errorf("expected no pending callbacks, got %d", m.sched.Pending())
	}
}

func TestLeavingCancelsDelayedTooltip(t *testing.T) {
	m := newTestModel(t, rowScene)
	b := tip(t, m, "b")

	m, _ = move(m, 7, 0)
	m, _ = move(m, 5, 0)
	if b.State() != tooltip.Hidden {
		t.Fatalf("expected hidden, got %v", b.State())
	}
	if m.sched.Pending() != 0 {
		t.Errorf("expected the timer to be stopped, got %d pending", m.sched.Pending())
	}

	// A late fire for the stopped timer changes nothing.
	_, _ = update(m, FireEvent{ID: 1})
	if b.State() != tooltip.Hidden {
		t.Errorf("stale fire showed the tooltip: %v", b.State())
	}
}

func TestMovingBetweenTargets(t *testing.T) {
	m := newTestModel(t, rowScene)
	a, b := tip(t, m, "a"), tip(t, m, "b")

	m, _ = move(m, 1, 0)
	m, _ = move(m, 7, 0)
	if a.State() != tooltip.Hidden {
		t.Errorf("expected a hidden, got %v", a.State())
	}
	if b.State() != tooltip.PendingShow {
		t.Errorf("expected b pending, got %v", b.State())
	}
}

func TestStopPropagation(t *testing.T) {
	tests := []struct {
		stop      string
		wantOuter tooltip.State
	}{
		{"true", tooltip.Hidden},
		{"false", tooltip.Visible},
	}
	for _, tt := range tests {
		t.Run(tt.stop, func(t *testing.T) {
			m := newTestModel(t, strings.Replace(nestedScene, "%s", tt.stop, 1))
			inner, outer := tip(t, m, "inner"), tip(t, m, "outer")

			m, _ = move(m, 1, 1)
			if inner.State() != tooltip.Visible {
				t.Errorf("expected inner visible, got %v", inner.State())
			}
			if outer.State() != tt.wantOuter {
				t.Errorf("expected outer %v, got %v", tt.wantOuter, outer.State())
			}

			// Over the padding only the outer target is hit.
			_, _ = move(m, 3, 2)
			if inner.State() != tooltip.Hidden {
				t.Errorf("expected inner hidden, got %v", inner.State())
			}
			if outer.State() != tooltip.Visible {
				t.Errorf("expected outer visible, got %v", outer.State())
			}
		})
	}
}

func TestWindowSizeMsgUpdatesDimensions(t *testing.T) {
	m := newTestModel(t, rowScene)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Width() != 120 {
		t.Errorf("expected width 120, got %d", m.Width())
	}
	if m.Height() != 40 {
		t.Errorf("expected height 40, got %d", m.Height())
	}
}

func TestThemeKeyCyclesTheme(t *testing.T) {
	m := newTestModel(t, rowScene)
	before := m.Scene()

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if cmd == nil {
		t.Fatal("expected a theme change command")
	}
	msg, ok := cmd().(ThemeChangeEvent)
	if !ok {
		t.Fatalf("expected ThemeChangeEvent, got %T", cmd())
	}
	if msg.Theme != "dracula" {
		t.Errorf("expected dracula after default, got %q", msg.Theme)
	}

	m, _ = update(m, msg)
	if m.Theme().Name != "dracula" {
		t.Errorf("expected dracula, got %q", m.Theme().Name)
	}
	if m.Scene() == before {
		t.Error("expected the scene to be rebuilt")
	}
}

func TestThemeColoursTooltips(t *testing.T) {
	m := newTestModel(t, rowScene)
	m, _ = update(m, ThemeChangeEvent{Theme: "nord"})
	a := tip(t, m, "a")

	m, _ = move(m, 1, 0)
	if a.State() != tooltip.Visible {
		t.Fatalf("expected visible, got %v", a.State())
	}
	if m.Theme().TooltipBackground == 0 {
		t.Error("nord has no tooltip background")
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	m := newTestModel(t, rowScene)
	m, _ = update(m, ThemeChangeEvent{Theme: "no-such-theme"})
	if m.Theme().Name != "default" {
		t.Errorf("expected default, got %q", m.Theme().Name)
	}
	if m.Err() != nil {
		t.Errorf("unexpected error: %v", m.Err())
	}
}

func TestReload(t *testing.T) {
	calls := 0
	m, err := New(parse(t, rowScene), Options{
		Load: func() (*scenefile.File, error) {
			calls++
			if calls > 1 {
				return nil, errors.New("gone")
			}
			return parse(t, "title: reloaded\nroot: {kind: leaf, width: 1, height: 1}\n"), nil
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
	m, _ = update(m, cmd())
	if m.Scene().Title != "reloaded" {
		t.Errorf("expected reloaded scene, got %q", m.Scene().Title)
	}

	m, _ = update(m, ReloadEvent{})
	if m.Err() == nil {
		t.Error("expected the load error to be kept")
	}
	if m.Scene().Title != "reloaded" {
		t.Error("a failed reload replaced the scene")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, rowScene)
	m, _ = move(m, 7, 0)

	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
	if m.sched.Pending() != 0 {
		t.Error("quitting left a pending tooltip")
	}
}

func TestViewShowsStatus(t *testing.T) {
	m := newTestModel(t, rowScene)
	m, _ = move(m, 1, 0)
	view := m.View()
	for _, want := range []string{"swatches", "default", "a"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

// --- Scheduler ---

func TestSchedulerStopAndFire(t *testing.T) {
	s := NewScheduler()
	ran := 0
	t1 := s.AfterFunc(time.Second, func() { ran++ })
	s.AfterFunc(0, func() { ran += 10 })

	if s.Pending() != 2 {
		t.Fatalf("expected 2 pending, got %d", s.Pending())
	}
	if !t1.Stop() {
		t.Error("Stop() on a pending timer should report true")
	}
	if t1.Stop() {
		t.Error("second Stop() should report false")
	}
	if s.Fire(1) {
		t.Error("Fire() ran a stopped callback")
	}
	if !s.Fire(2) || ran != 10 {
		t.Errorf("Fire(2) did not run the callback, ran=%d", ran)
	}
	if s.Fire(2) {
		t.Error("Fire() ran a callback twice")
	}
}

func TestSchedulerDrain(t *testing.T) {
	s := NewScheduler()
	if s.Drain() != nil {
		t.Error("Drain() with nothing queued should be nil")
	}
	s.AfterFunc(0, func() {})
	cmd := s.Drain()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if ev, ok := cmd().(FireEvent); !ok || ev.ID != 1 {
		t.Errorf("expected FireEvent{1}, got %#v", cmd())
	}
	if s.Drain() != nil {
		t.Error("Drain() returned the same commands twice")
	}
}

func TestSchedulerFireAll(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.AfterFunc(time.Minute, func() { order = append(order, 1) })
	t2 := s.AfterFunc(time.Minute, func() { order = append(order, 2) })
	s.AfterFunc(time.Minute, func() { order = append(order, 3) })
	t2.Stop()

	if n := s.FireAll(); n != 2 {
		t.Errorf("FireAll() = %d, want 2", n)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Errorf("expected [1 3], got %v", order)
	}
	if s.Pending() != 0 {
		t.Errorf("expected nothing pending, got %d", s.Pending())
	}
}
