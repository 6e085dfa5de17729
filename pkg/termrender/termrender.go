// Package termrender composites a scene tree into a terminal cell grid.
// Scene units are cells: fills become background colours, borders become
// box-drawing runes, text is written as is, and a shadow is a shaded band
// one cell below and right of its shape.
package termrender

import (
	"io"
	"log/slog"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
)

// ShadowRune shades shadow cells.
const ShadowRune = '░'

// ASCIIShadowRune shades shadow cells when only ASCII is available.
const ASCIIShadowRune = '.'

// shadowColor is the foreground used for shadow cells.
const shadowColor paint.Color = 0x303030

// Options configures a Renderer.
type Options struct {
	// Output is where styled output will be written; lipgloss inspects it
	// for terminal capabilities. Nil means io.Discard.
	Output io.Writer
	// Profile forces a colour profile. termenv.Ascii disables colour.
	Profile termenv.Profile
	// Width and Height clip the grid. Zero sizes it to the scene.
	Width, Height int
	// ASCII draws borders and shadows with ASCII runes only, for
	// terminals without a UTF-8 locale.
	ASCII  bool
	Logger *slog.Logger
}

// Renderer composites scene trees into styled strings.
type Renderer struct {
	lg     *lipgloss.Renderer
	width  int
	height int
	ascii  bool
	logger *slog.Logger
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	lg := lipgloss.NewRenderer(out, termenv.WithProfile(opts.Profile))
	lg.SetColorProfile(opts.Profile)

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{lg: lg, width: opts.Width, height: opts.Height, ascii: opts.ASCII, logger: logger}
}

// SetSize changes the clip size. Zero sizes that axis to the scene.
func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = width, height
}

// Paint composites root into a buffer. The scene origin maps to cell
// (0, 0); anything at negative coordinates is clipped.
func (r *Renderer) Paint(root *scene.Node) *Buffer {
	w, h := r.width, r.height
	if w <= 0 || h <= 0 {
		var extent geom.Rect
		for _, b := range scene.Bounds(root) {
			extent = extent.Union(b)
		}
		if w <= 0 {
			w = int(math.Ceil(extent.Right()))
		}
		if h <= 0 {
			h = int(math.Ceil(extent.Bottom()))
		}
	}

	buf := NewBuffer(w, h)
	scene.Walk(root, func(n *scene.Node, t scene.Transform) bool {
		if n.Paint == nil {
			return true
		}
		x, y := t.Apply(0, 0)
		r.paintNode(buf, cellRect(x, y, n.Width*t.ScaleX, n.Height*t.ScaleY), n.Paint)
		return true
	})
	r.logger.Debug("terminal render", "width", w, "height", h)
	return buf
}

// Render composites root and styles it for the renderer's profile.
func (r *Renderer) Render(root *scene.Node) string {
	return r.Paint(root).Render(r.lg)
}

// cells is a half-open cell rectangle [x0, x1) x [y0, y1).
type cells struct {
	x0, y0, x1, y1 int
}

// cellRect snaps a scene rectangle to whole cells.
func cellRect(x, y, w, h float64) cells {
	return cells{
		x0: int(math.Round(x)),
		y0: int(math.Round(y)),
		x1: int(math.Round(x + w)),
		y1: int(math.Round(y + h)),
	}
}

func (r *Renderer) paintNode(buf *Buffer, c cells, p paint.Paint) {
	switch p := p.(type) {
	case paint.Fill:
		if p.Alpha <= 0 {
			return
		}
		for y := c.y0; y < c.y1; y++ {
			for x := c.x0; x < c.x1; x++ {
				buf.SetBG(x, y, p.Color)
			}
		}
	case paint.Stroke:
		stroke(buf, c.x0, c.y0, c.x1-1, c.y1-1, r.borderFor(p), p)
	case paint.Shadow:
		shade := ShadowRune
		if r.ascii {
			shade = ASCIIShadowRune
		}
		for y := c.y0 + 1; y <= c.y1; y++ {
			buf.SetRune(c.x1, y, shade, shadowColor)
		}
		for x := c.x0 + 1; x < c.x1; x++ {
			buf.SetRune(x, c.y1, shade, shadowColor)
		}
	case paint.Text:
		buf.Blit(p.Content, c.x0, c.y0, p.Color)
	}
}

// borderFor picks box-drawing runes for a stroke.
func (r *Renderer) borderFor(s paint.Stroke) lipgloss.Border {
	switch {
	case r.ascii:
		return lipgloss.ASCIIBorder()
	case s.Width >= 2:
		return lipgloss.ThickBorder()
	case s.Radius > 0:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// stroke draws a border on the inclusive cell rectangle (x0, y0)-(x1, y1).
func stroke(buf *Buffer, x0, y0, x1, y1 int, b lipgloss.Border, s paint.Stroke) {
	if s.Width <= 0 || x1 < x0 || y1 < y0 {
		return
	}
	h, v := first(b.Top), first(b.Left)

	hline := func(y int) {
		for x := x0; x <= x1; x++ {
			buf.SetRune(x, y, h, s.Color)
		}
	}
	vline := func(x int) {
		for y := y0; y <= y1; y++ {
			buf.SetRune(x, y, v, s.Color)
		}
	}

	switch s.Side {
	case paint.SideTop:
		hline(y0)
	case paint.SideBottom:
		hline(y1)
	case paint.SideLeft:
		vline(x0)
	case paint.SideRight:
		vline(x1)
	default:
		hline(y0)
		hline(y1)
		vline(x0)
		vline(x1)
		buf.SetRune(x0, y0, first(b.TopLeft), s.Color)
		buf.SetRune(x1, y0, first(b.TopRight), s.Color)
		buf.SetRune(x0, y1, first(b.BottomLeft), s.Color)
		buf.SetRune(x1, y1, first(b.BottomRight), s.Color)
	}
}

func first(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
