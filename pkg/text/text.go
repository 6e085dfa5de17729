// Package text builds pre-measured text leaves. Text is measured in
// terminal cells (ANSI escapes ignored, wide runes counted twice) and
// converted to scene units through a Metrics value, so the same scene
// can be composited into a terminal or rasterized with a fixed-size face.
package text

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
)

// NodeName is the name given to text leaves.
const NodeName = "text"

// DefaultMarker is appended to truncated lines.
const DefaultMarker = "..."

// Metrics converts cell counts to scene units.
type Metrics struct {
	CellWidth  float64
	CellHeight float64
}

// Cells measures one scene unit per terminal cell.
var Cells = Metrics{CellWidth: 1, CellHeight: 1}

// Face7x13 matches the fixed 7x13 bitmap face used by the raster backend.
var Face7x13 = Metrics{CellWidth: 7, CellHeight: 13}

// Measure returns the size of s in scene units: its widest line by its
// line count.
func (m Metrics) Measure(s string) geom.Size {
	return geom.Size{
		Width:  float64(lipgloss.Width(s)) * m.CellWidth,
		Height: float64(lipgloss.Height(s)) * m.CellHeight,
	}
}

// New returns a text leaf sized to content.
func (m Metrics) New(content string, color paint.Color) *scene.Node {
	size := m.Measure(content)
	return &scene.Node{
		Name:   NodeName,
		Width:  size.Width,
		Height: size.Height,
		Paint:  paint.Text{Content: content, Color: color},
	}
}

// columns returns how many whole cells fit in width scene units.
func (m Metrics) columns(width float64) int {
	if m.CellWidth <= 0 {
		return int(width)
	}
	return int(math.Floor(width / m.CellWidth))
}

// New returns a text leaf measured in cells.
func New(content string, color paint.Color) *scene.Node {
	return Cells.New(content, color)
}

// Measure measures s in cells.
func Measure(s string) geom.Size {
	return Cells.Measure(s)
}

// Lines splits s into lines and word-wraps each to width cells. A word
// longer than width is broken. Spaces left at a wrap point are dropped.
func Lines(s string, width int) []string {
	if width <= 0 {
		return strings.Split(s, "\n")
	}
	lines := strings.Split(ansi.Wrap(s, width, ""), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
