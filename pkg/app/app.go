package app

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
	"gitlab.com/tinyland/lab/boxkit/pkg/scenefile"
	"gitlab.com/tinyland/lab/boxkit/pkg/termrender"
	"gitlab.com/tinyland/lab/boxkit/pkg/theme"
	"gitlab.com/tinyland/lab/boxkit/pkg/tooltip"
)

// Options configures a Model.
type Options struct {
	// Builder builds the scene. Its tooltip scheduler, text colour and
	// tooltip colours are supplied by the model.
	Builder scenefile.Builder
	// Theme names the initial palette.
	Theme string
	// ColorDepth below 24 snaps palettes to the 256-colour cube. Zero
	// means 24.
	ColorDepth int
	// Renderer draws the scene. Nil uses a colourless renderer.
	Renderer *termrender.Renderer
	// Load re-reads the description on reload. Nil reuses the first one.
	Load   func() (*scenefile.File, error)
	Logger *slog.Logger
}

// Model is the root bubbletea model.
type Model struct {
	opts  Options
	file  *scenefile.File
	sched *Scheduler
	scene *scenefile.Scene
	theme theme.Theme

	keys keyMap
	help help.Model

	// active holds the tooltips the pointer is currently over, innermost
	// target first.
	active  []*tooltip.Tooltip
	hovered *scene.Node

	width, height int
	err           error
}

// New builds f and returns a model showing it.
func New(f *scenefile.File, opts Options) (Model, error) {
	if opts.ColorDepth == 0 {
		opts.ColorDepth = 24
	}
	if opts.Renderer == nil {
		opts.Renderer = termrender.New(termrender.Options{Logger: opts.Logger})
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	m := Model{
		opts:  opts,
		file:  f,
		sched: NewScheduler(),
		keys:  defaultKeys(),
		help:  help.New(),
	}
	if err := m.rebuild(opts.Theme); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.scene.Destroy()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
		case key.Matches(msg, m.keys.Theme):
			next := m.nextTheme()
			return m, func() tea.Msg { return ThemeChangeEvent{Theme: next} }
		case key.Matches(msg, m.keys.Reload):
			return m, func() tea.Msg { return ReloadEvent{} }
		}

	case tea.MouseMsg:
		// Pointer at the cell centre.
		m.pointerMove(float64(msg.X)+0.5, float64(msg.Y)+0.5)

	case FireEvent:
		m.sched.Fire(msg.ID)

	case ThemeChangeEvent:
		m.err = m.rebuild(msg.Theme)

	case ReloadEvent:
		if m.opts.Load != nil {
			f, err := m.opts.Load()
			if err != nil {
				m.err = err
				break
			}
			m.file = f
		}
		m.err = m.rebuild(m.theme.Name)
	}
	return m, m.sched.Drain()
}

// View implements tea.Model.
func (m Model) View() string {
	body := m.opts.Renderer.Render(m.scene.Root)

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Dim.Hex()))
	status := fmt.Sprintf("%s · %s", m.title(), m.theme.Name)
	if m.hovered != nil {
		status += " · " + m.hovered.Name
	}
	if m.err != nil {
		status += " · " + lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, dim.Render(status), m.help.View(m.keys))
}

// Scene returns the scene being shown.
func (m Model) Scene() *scenefile.Scene { return m.scene }

// Theme returns the active palette.
func (m Model) Theme() theme.Theme { return m.theme }

// Hovered returns the interactive node under the pointer, or nil.
func (m Model) Hovered() *scene.Node { return m.hovered }

// Err returns the last rebuild error.
func (m Model) Err() error { return m.err }

// Width returns the terminal width.
func (m Model) Width() int { return m.width }

// Height returns the terminal height.
func (m Model) Height() int { return m.height }

func (m Model) title() string {
	if m.scene.Title != "" {
		return m.scene.Title
	}
	return "boxkit"
}

// resize gives the scene every row the footer does not use.
func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	footer := 1 + lipgloss.Height(m.help.View(m.keys))
	m.opts.Renderer.SetSize(m.width, max(m.height-footer, 1))
}

// rebuild builds the description with the named palette. On error the
// current scene stays.
func (m *Model) rebuild(name string) error {
	th, ok := theme.Lookup(name)
	if !ok && name != "" {
		m.opts.Logger.Warn("unknown theme, using default", "theme", name)
	}
	th = theme.Adapt(th, m.opts.ColorDepth)

	b := m.opts.Builder
	b.Tooltip.Scheduler = m.sched
	b.Tooltip = th.Tooltip(b.Tooltip)
	b.Foreground = th.Foreground
	if b.Logger == nil {
		b.Logger = m.opts.Logger
	}

	s, err := b.Build(m.file)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if m.scene != nil {
		m.scene.Destroy()
	}
	m.scene, m.theme = s, th
	m.active, m.hovered = nil, nil
	m.opts.Logger.Debug("scene rebuilt", "theme", th.Name, "tooltips", len(s.Tooltips))
	return nil
}

func (m Model) nextTheme() string {
	names := theme.Names()
	i := slices.Index(names, m.theme.Name)
	return names[(i+1)%len(names)]
}

// pointerMove dispatches a root-space pointer position. Tooltips on the
// hit node and its ancestors receive PointerOver, innermost first, until
// one stops propagation; tooltips no longer reached receive PointerOut.
func (m *Model) pointerMove(x, y float64) {
	root := m.scene.Root
	hit := scene.HitTest(root, x, y)
	m.hovered = hit

	var next []*tooltip.Tooltip
	for n := hit; n != nil; n = n.Parent() {
		tt := m.scene.TooltipFor(n)
		if tt == nil {
			continue
		}
		next = append(next, tt)
		t, _ := scene.LocalTransform(root, n)
		lx, ly := t.Invert(x, y)
		if tt.PointerOver(tooltip.Event{X: lx, Y: ly}) {
			break
		}
	}

	for _, tt := range m.active {
		if !slices.Contains(next, tt) {
			tt.PointerOut()
		}
	}
	m.active = next
}
