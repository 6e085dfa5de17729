package scenefile

import (
	"fmt"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/boxkit/pkg/box"
	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/hitarea"
	"gitlab.com/tinyland/lab/boxkit/pkg/layout"
	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
	"gitlab.com/tinyland/lab/boxkit/pkg/style"
	"gitlab.com/tinyland/lab/boxkit/pkg/text"
	"gitlab.com/tinyland/lab/boxkit/pkg/tooltip"
)

// Builder turns descriptions into scenes.
type Builder struct {
	// Metrics measures text. Zero means text.Cells.
	Metrics text.Metrics
	// Engine lays out containers. Nil uses an uncached engine.
	Engine *layout.Engine
	// Tooltip holds defaults for every tooltip in the file, including
	// the scheduler and callbacks.
	Tooltip tooltip.Options
	// Foreground colours text that does not set its own colour.
	Foreground paint.Color
	Logger     *slog.Logger
}

// Scene is a built description.
type Scene struct {
	Title    string
	Root     *scene.Node
	Tooltips []*tooltip.Tooltip
	// Named maps each name given in the description to its node.
	Named map[string]*scene.Node
}

// Destroy tears down every tooltip.
func (s *Scene) Destroy() {
	for _, t := range s.Tooltips {
		t.Destroy()
	}
}

// TooltipFor returns the tooltip bound to target, or nil.
func (s *Scene) TooltipFor(target *scene.Node) *tooltip.Tooltip {
	for _, t := range s.Tooltips {
		if t.Target() == target {
			return t
		}
	}
	return nil
}

type build struct {
	Builder
	out *Scene
}

// Build constructs the scene tree for f.
func (b Builder) Build(f *File) (*Scene, error) {
	if b.Metrics == (text.Metrics{}) {
		b.Metrics = text.Cells
	}
	if b.Engine == nil {
		b.Engine = layout.NewEngine(nil)
	}
	if b.Logger == nil {
		b.Logger = slog.Default()
	}
	bd := &build{Builder: b, out: &Scene{Title: f.Title, Named: make(map[string]*scene.Node)}}

	root, err := bd.node(&f.Root, "root")
	if err != nil {
		bd.out.Destroy()
		return nil, err
	}
	bd.out.Root = root
	b.Logger.Debug("scene built", "title", f.Title, "tooltips", len(bd.out.Tooltips), "named", len(bd.out.Named))
	return bd.out, nil
}

func (b *build) node(s *Spec, path string) (*scene.Node, error) {
	n, err := b.shape(s, path)
	if err != nil {
		return nil, err
	}
	if s.Scale != 0 {
		n.SetScale(s.Scale, s.Scale)
	}
	if s.Name != "" {
		if _, dup := b.out.Named[s.Name]; dup {
			return nil, fmt.Errorf("scenefile: %s: duplicate name %q", path, s.Name)
		}
		n.Name = s.Name
		b.out.Named[s.Name] = n
	}
	if s.Interactive || len(s.HitArea) > 0 {
		n.Interactive = true
	}
	if len(s.HitArea) > 0 {
		area, err := hitArea(s.HitArea, n.Size())
		if err != nil {
			return nil, fmt.Errorf("scenefile: %s: %w", path, err)
		}
		n.HitArea = area
	}
	if s.Tooltip != nil {
		if err := b.tooltip(n, s.Tooltip, path+".tooltip"); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (b *build) children(s *Spec, path string) ([]*scene.Node, error) {
	nodes := make([]*scene.Node, 0, len(s.Children))
	for i := range s.Children {
		n, err := b.node(&s.Children[i], fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (b *build) color(c *paint.Color) paint.Color {
	if c == nil {
		return b.Foreground
	}
	return *c
}

func (b *build) shape(s *Spec, path string) (*scene.Node, error) {
	kind := strings.ToLower(s.Kind)
	switch kind {
	case "", "leaf":
		n := scene.NewLeaf("leaf", s.Width, s.Height)
		if s.Fill != nil {
			n.Paint = paint.Fill{Color: *s.Fill, Alpha: 1}
		}
		return n, nil
	case "text":
		return b.Metrics.New(s.Text, b.color(s.Color)), nil
	case "truncated":
		if s.MaxWidth <= 0 {
			return nil, fmt.Errorf("scenefile: %s: truncated text needs maxWidth", path)
		}
		return b.Metrics.Truncated(s.Text, b.color(s.Color), s.MaxWidth, s.Truncate), nil
	case "borderbox":
		if s.Border == nil {
			return nil, fmt.Errorf("scenefile: %s: borderbox needs a border", path)
		}
		return box.BorderOnly(geom.Sz(s.Width, s.Height), *s.Border), nil
	}

	children, err := b.children(s, path)
	if err != nil {
		return nil, err
	}

	switch kind {
	case "row":
		return b.Engine.Row(children, layout.Options{Spacing: s.Spacing.Column, Align: s.Align, Style: s.Style}), nil
	case "column":
		return b.Engine.Column(children, layout.Options{Spacing: s.Spacing.Row, Align: s.Align, Style: s.Style}), nil
	case "list":
		dir, err := direction(s.Direction)
		if err != nil {
			return nil, fmt.Errorf("scenefile: %s: %w", path, err)
		}
		spacing := s.Spacing.Row
		if dir == layout.Horizontal {
			spacing = s.Spacing.Column
		}
		return b.Engine.List(children, layout.ListOptions{Direction: dir, Spacing: spacing, Align: s.Align}), nil
	case "grid":
		return b.Engine.Grid(children, layout.GridOptions{Columns: s.Columns, Spacing: s.Spacing, Align: s.Align, Style: s.Style}), nil
	case "wrap":
		return b.Engine.WrappedRow(children, layout.WrapOptions{
			WrapWidth: s.WrapWidth,
			Spacing:   s.Spacing.Column,
			AlignX:    s.AlignX,
			AlignY:    s.AlignY,
			Style:     s.Style,
		}), nil
	case "box":
		var opts style.Options
		if s.Style != nil {
			opts = *s.Style
		}
		return box.New(children, opts), nil
	}
	return nil, fmt.Errorf("scenefile: %s: unknown kind %q", path, s.Kind)
}

func direction(s string) (layout.Direction, error) {
	switch strings.ToLower(s) {
	case "", "column", "vertical":
		return layout.Vertical, nil
	case "row", "horizontal":
		return layout.Horizontal, nil
	}
	return layout.Vertical, fmt.Errorf("unknown direction %q", s)
}

// hitArea builds the union of specs over a node of the given size.
func hitArea(specs []HitAreaSpec, size geom.Size) (hitarea.HitArea, error) {
	bounds := geom.RectFromSize(size)
	areas := make(hitarea.Compound, 0, len(specs))
	for _, s := range specs {
		switch strings.ToLower(s.Kind) {
		case "", "rect":
			areas = append(areas, hitarea.Rect(bounds))
		case "rounded":
			areas = append(areas, hitarea.RoundedRect(geom.NewRoundedRect(bounds, s.Radius)))
		case "border":
			areas = append(areas, hitarea.NewBorder(bounds, hitarea.BorderConfig{Width: s.Width, Radius: s.Radius}))
		default:
			return nil, fmt.Errorf("unknown hit area kind %q", s.Kind)
		}
	}
	if len(areas) == 1 {
		return areas[0], nil
	}
	return areas, nil
}

func (b *build) tooltip(target *scene.Node, s *TooltipSpec, path string) error {
	opts := s.options(b.Tooltip)

	var content *scene.Node
	switch {
	case s.Content != nil && s.Text != "":
		return fmt.Errorf("scenefile: %s: set text or content, not both", path)
	case s.Content != nil:
		c, err := b.node(s.Content, path+".content")
		if err != nil {
			return err
		}
		content = c
	default:
		content = b.Metrics.New(s.Text, opts.TextColor)
	}

	b.out.Tooltips = append(b.out.Tooltips, tooltip.New(target, content, opts))
	return nil
}
