package box

import (
	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
	"gitlab.com/tinyland/lab/boxkit/pkg/style"
)

// Border returns a standalone border node of the given size. It draws
// exactly what a Box border would, without padding or content.
func Border(size geom.Size, spec style.BorderSpec, radius float64) *scene.Node {
	s := style.Resolve(style.Options{Border: &spec, BorderRadius: radius})
	return &scene.Node{
		Name:   NameBorder,
		Width:  size.Width,
		Height: size.Height,
		Paint:  s.Border,
	}
}

// BorderOnly returns a border whose stroke is centred on a rectangle of
// the given size, offset by half the stroke width so the whole stroke
// stays in positive coordinates.
func BorderOnly(size geom.Size, spec style.BorderSpec) *scene.Node {
	s := style.Resolve(style.Options{Border: &spec})
	stroke := s.Border
	stroke.Side = paint.SideAll
	stroke.Centered = true
	return &scene.Node{
		Name:   NameBorder,
		Width:  size.Width + spec.Width,
		Height: size.Height + spec.Width,
		Paint:  stroke,
	}
}
