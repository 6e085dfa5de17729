// Package tooltip anchors a decorated box to a target node, showing it
// on pointer-over after an optional delay and removing it on pointer-out.
//
// A Tooltip is a small state machine:
//
//	Hidden --over, delay 0--> Visible
//	Hidden --over, delay>0--> PendingShow --timer--> Visible
//	PendingShow|Visible --out--> Hidden
//
// Attaching the tooltip node to its target is the only side effect of a
// transition. A pointer-out always cancels the pending timer, so no show
// can happen after the pointer has left.
package tooltip

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gitlab.com/tinyland/lab/boxkit/pkg/box"
	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
	"gitlab.com/tinyland/lab/boxkit/pkg/style"
	"gitlab.com/tinyland/lab/boxkit/pkg/text"
)

// NodeName is the name of the tooltip's root node.
const NodeName = "tooltip"

// State is the visibility state of a tooltip.
type State int

const (
	Hidden State = iota
	PendingShow
	Visible
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case PendingShow:
		return "pending"
	case Visible:
		return "visible"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Event is a pointer notification already dispatched to the target. X and
// Y are the pointer position in the target's local space.
type Event struct {
	X, Y float64
}

// Options configures a tooltip. The zero value is usable: bottom-center
// on the target, no offset, no delay, stop propagation.
type Options struct {
	Placement      Placement      `toml:"placement" yaml:"placement"`
	PositionTarget PositionTarget `toml:"position_target" yaml:"positionTarget"`
	OffsetX        float64        `toml:"offset_x" yaml:"offsetX"`
	OffsetY        float64        `toml:"offset_y" yaml:"offsetY"`
	Delay          time.Duration  `toml:"-" yaml:"delay"`
	// StopPropagation is reported back from PointerOver. Nil means true.
	StopPropagation *bool `toml:"stop_propagation" yaml:"stopPropagation"`

	// Style decorates the content, as for a box.
	Style style.Options `toml:"style" yaml:"style"`
	// TextColor colours string content passed to NewText.
	TextColor paint.Color `toml:"text_color" yaml:"textColor"`

	OnShow func(*Tooltip) `toml:"-" yaml:"-"`
	OnHide func(*Tooltip) `toml:"-" yaml:"-"`
	// GetCurrentScale returns the scale of the viewport the target lives
	// in. The tooltip applies the inverse so its size stays constant on
	// screen.
	GetCurrentScale func() (x, y float64) `toml:"-" yaml:"-"`

	Scheduler Scheduler    `toml:"-" yaml:"-"`
	Logger    *slog.Logger `toml:"-" yaml:"-"`
}

// Bool returns a pointer to v, for StopPropagation.
func Bool(v bool) *bool {
	return &v
}

// config is Options with every default filled in.
type config struct {
	Options
	stopPropagation bool
}

func resolve(o Options) config {
	c := config{Options: o, stopPropagation: true}
	if o.StopPropagation != nil {
		c.stopPropagation = *o.StopPropagation
	}
	if c.Delay < 0 {
		c.Delay = 0
	}
	if c.Scheduler == nil {
		c.Scheduler = Clock
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// Tooltip is a floating box owned by a target node. Its methods are safe
// to call from the scheduler's goroutine and the event source at once.
type Tooltip struct {
	mu     sync.Mutex
	cfg    config
	target *scene.Node
	node   *scene.Node
	state  State
	timer  Timer
	// gen invalidates timers that fire after they were cancelled.
	gen uint64
}

// New wraps content in a box styled by opts.Style and binds it to
// target, which is marked interactive.
func New(target, content *scene.Node, opts Options) *Tooltip {
	cfg := resolve(opts)
	node := box.Wrap(content, cfg.Style)
	node.Name = NodeName
	target.Interactive = true
	return &Tooltip{cfg: cfg, target: target, node: node}
}

// NewText is New with a cell-measured text leaf as content.
func NewText(target *scene.Node, content string, opts Options) *Tooltip {
	return New(target, text.New(content, opts.TextColor), opts)
}

// Node returns the tooltip's root node.
func (t *Tooltip) Node() *scene.Node {
	return t.node
}

// Target returns the node the tooltip is bound to.
func (t *Tooltip) Target() *scene.Node {
	return t.target
}

// State returns the current state.
func (t *Tooltip) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// PointerOver handles the pointer entering the target. It reports
// whether the event should stop propagating to the target's ancestors.
// Entering while pending or visible changes nothing.
func (t *Tooltip) PointerOver(ev Event) bool {
	t.mu.Lock()
	if t.state != Hidden {
		t.mu.Unlock()
		return t.cfg.stopPropagation
	}

	if t.cfg.Delay <= 0 {
		t.showLocked(ev)
		t.mu.Unlock()
		t.notify(t.cfg.OnShow)
		return t.cfg.stopPropagation
	}

	t.gen++
	gen := t.gen
	t.state = PendingShow
	t.cfg.Logger.Debug("tooltip pending", "target", t.target.Name, "delay", t.cfg.Delay)
	t.mu.Unlock()

	// Scheduled unlocked: a scheduler may run the callback inline.
	timer := t.cfg.Scheduler.AfterFunc(t.cfg.Delay, func() { t.fire(gen, ev) })

	t.mu.Lock()
	if t.state == PendingShow && t.gen == gen {
		t.timer = timer
	} else {
		timer.Stop()
	}
	t.mu.Unlock()
	return t.cfg.stopPropagation
}

// fire completes a delayed show unless the timer was cancelled.
func (t *Tooltip) fire(gen uint64, ev Event) {
	t.mu.Lock()
	if t.state != PendingShow || t.gen != gen {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	t.showLocked(ev)
	t.mu.Unlock()
	t.notify(t.cfg.OnShow)
}

// PointerOut handles the pointer leaving the target. It is a no-op on a
// hidden tooltip.
func (t *Tooltip) PointerOut() {
	if t.hide() {
		t.notify(t.cfg.OnHide)
	}
}

// Destroy cancels any pending show and detaches the tooltip without
// invoking callbacks. Call it when the target is discarded.
func (t *Tooltip) Destroy() {
	t.hide()
}

// hide resets to Hidden and reports whether the tooltip was visible.
func (t *Tooltip) hide() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	was := t.state
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if t.node.Parent() == t.target {
		t.target.RemoveChild(t.node)
	}
	t.state = Hidden
	if was != Hidden {
		t.cfg.Logger.Debug("tooltip hidden", "target", t.target.Name, "from", was)
	}
	return was == Visible
}

// showLocked positions and attaches the tooltip. t.mu must be held.
func (t *Tooltip) showLocked(ev Event) {
	if t.cfg.GetCurrentScale != nil {
		sx, sy := t.cfg.GetCurrentScale()
		if sx != 0 && sy != 0 {
			t.node.SetScale(1/sx, 1/sy)
		}
	}

	pos := t.position(ev)
	t.node.X, t.node.Y = pos.X, pos.Y
	t.target.AddChild(t.node)
	t.state = Visible
	t.cfg.Logger.Debug("tooltip shown",
		"target", t.target.Name,
		"placement", t.cfg.Placement,
		"x", pos.X, "y", pos.Y)
}

// position computes the tooltip's corner in the target's local space
// from its scaled size, then adds the fixed offset.
func (t *Tooltip) position(ev Event) geom.Point {
	tip := t.node.ScaledSize()
	var p geom.Point
	if t.cfg.PositionTarget == PositionTargetPointer {
		p = OnPointer(t.cfg.Placement, ev.X, ev.Y, tip)
	} else {
		p = OnTarget(t.cfg.Placement, t.target.Size(), tip)
	}
	return p.Add(geom.Pt(t.cfg.OffsetX, t.cfg.OffsetY))
}

func (t *Tooltip) notify(fn func(*Tooltip)) {
	if fn != nil {
		fn(t)
	}
}
