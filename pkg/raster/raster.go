// Package raster paints a scene tree into an image. It is the reference
// drawing backend: fills and borders go through gg, shadows are blurred
// with imaging, and text uses a fixed bitmap face from x/image.
package raster

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
)

// Options configures a Renderer.
type Options struct {
	// Scale is device pixels per scene unit. Zero means 1.
	Scale float64
	// Background fills the canvas before painting. Nil leaves it
	// transparent.
	Background *paint.Color
	// Face draws text. Nil means basicfont.Face7x13, which matches
	// text.Face7x13 metrics.
	Face font.Face
	// MaxWidth and MaxHeight bound encoded images; larger renders are
	// scaled down with Fit. Zero is unbounded.
	MaxWidth, MaxHeight int
	Logger              *slog.Logger
}

// Renderer paints scene trees. It holds no per-frame state and may be
// reused.
type Renderer struct {
	scale  float64
	bg     *paint.Color
	face   font.Face
	maxW   int
	maxH   int
	logger *slog.Logger
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	r := &Renderer{scale: opts.Scale, bg: opts.Background, face: opts.Face, maxW: opts.MaxWidth, maxH: opts.MaxHeight, logger: opts.Logger}
	if r.scale <= 0 {
		r.scale = 1
	}
	if r.face == nil {
		r.face = basicfont.Face7x13
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Canvas returns the scene-space rectangle covered by every node in the
// tree, which may extend above or left of the root (a tooltip placed
// over its target, for instance).
func Canvas(root *scene.Node) geom.Rect {
	var canvas geom.Rect
	for _, b := range scene.Bounds(root) {
		canvas = canvas.Union(b)
	}
	return canvas
}

// Render paints root and returns the image. The canvas covers Canvas(root).
func (r *Renderer) Render(root *scene.Node) image.Image {
	canvas := Canvas(root)
	w := max(1, int(math.Ceil(canvas.Width*r.scale)))
	h := max(1, int(math.Ceil(canvas.Height*r.scale)))

	dc := gg.NewContext(w, h)
	if r.bg != nil {
		dc.SetColor(r.bg.NRGBA(1))
		dc.Clear()
	}

	painted := 0
	scene.Walk(root, func(n *scene.Node, t scene.Transform) bool {
		if n.Paint == nil {
			return true
		}
		dc.Push()
		dc.Scale(r.scale, r.scale)
		dc.Translate(t.OffsetX-canvas.X, t.OffsetY-canvas.Y)
		dc.Scale(t.ScaleX, t.ScaleY)
		r.paint(dc, n)
		dc.Pop()
		painted++
		return true
	})

	r.logger.Debug("raster render", "width", w, "height", h, "painted", painted)
	return dc.Image()
}

// paint draws one node in its local coordinates.
func (r *Renderer) paint(dc *gg.Context, n *scene.Node) {
	switch p := n.Paint.(type) {
	case paint.Fill:
		dc.SetColor(p.Color.NRGBA(p.Alpha))
		rect(dc, 0, 0, n.Width, n.Height, p.Radius)
		dc.Fill()
	case paint.Stroke:
		strokeNode(dc, n.Width, n.Height, p)
	case paint.Shadow:
		r.shadow(dc, n.Width, n.Height, p)
	case paint.Text:
		r.text(dc, p)
	case paint.Spacer:
	default:
		r.logger.Warn("raster: unsupported paint", "node", n.Name, "type", fmt.Sprintf("%T", p))
	}
}

func rect(dc *gg.Context, x, y, w, h, radius float64) {
	if radius > 0 {
		dc.DrawRoundedRectangle(x, y, w, h, radius)
		return
	}
	dc.DrawRectangle(x, y, w, h)
}

// strokeNode draws a border. A full outline sits inside the node's bounds
// so it never grows the footprint; a single side is a band of the stroke
// width along that edge.
func strokeNode(dc *gg.Context, w, h float64, s paint.Stroke) {
	if s.Width <= 0 {
		return
	}
	dc.SetColor(s.Color.NRGBA(s.Alpha))
	half := s.Width / 2

	switch s.Side {
	case paint.SideTop:
		dc.DrawRectangle(0, 0, w, s.Width)
	case paint.SideBottom:
		dc.DrawRectangle(0, h-s.Width, w, s.Width)
	case paint.SideLeft:
		dc.DrawRectangle(0, 0, s.Width, h)
	case paint.SideRight:
		dc.DrawRectangle(w-s.Width, 0, s.Width, h)
	default:
		// Inner-aligned on the node and centred on a rectangle inset by
		// half the width are the same path.
		dc.SetLineWidth(s.Width)
		rect(dc, half, half, w-s.Width, h-s.Width, math.Max(0, s.Radius-half))
		dc.Stroke()
		return
	}
	dc.Fill()
}

// shadow paints a translucent black copy of the node's shape, blurred
// with a Gaussian of sigma Strength/2. Quality only matters for
// multi-pass approximations of a Gaussian and is not needed here.
func (r *Renderer) shadow(dc *gg.Context, w, h float64, s paint.Shadow) {
	sigma := s.Strength / 2
	pad := math.Ceil(3 * sigma)
	sw := int(math.Ceil(w + 2*pad))
	sh := int(math.Ceil(h + 2*pad))
	if sw <= 0 || sh <= 0 {
		return
	}

	layer := gg.NewContext(sw, sh)
	layer.SetRGBA(0, 0, 0, s.Alpha)
	rect(layer, pad, pad, w, h, s.Radius)
	layer.Fill()

	var img image.Image = layer.Image()
	if sigma > 0 {
		img = imaging.Blur(img, sigma)
	}
	dc.DrawImage(img, int(-pad), int(-pad))
}

// text draws p line by line from the node's top-left corner. Escape
// sequences are stripped; colour comes from the paint.
func (r *Renderer) text(dc *gg.Context, p paint.Text) {
	dc.SetFontFace(r.face)
	dc.SetColor(p.Color.NRGBA(1))
	m := r.face.Metrics()
	ascent := float64(m.Ascent.Ceil())
	lineHeight := float64(m.Height.Ceil())
	for i, line := range strings.Split(ansi.Strip(p.Content), "\n") {
		dc.DrawString(line, 0, ascent+float64(i)*lineHeight)
	}
}

// Image renders root and fits it within the configured bounds.
func (r *Renderer) Image(root *scene.Node) image.Image {
	return Fit(r.Render(root), r.maxW, r.maxH)
}

// Encode writes root as a PNG.
func (r *Renderer) Encode(w io.Writer, root *scene.Node) error {
	if err := imaging.Encode(w, r.Image(root), imaging.PNG); err != nil {
		return fmt.Errorf("raster: encode: %w", err)
	}
	return nil
}

// Save renders root to path. The format follows the file extension.
func (r *Renderer) Save(path string, root *scene.Node) error {
	if err := imaging.Save(r.Image(root), path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}
