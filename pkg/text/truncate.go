package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
	"gitlab.com/tinyland/lab/boxkit/pkg/scene"
)

// TruncateOptions configures Truncate.
type TruncateOptions struct {
	// MaxLines is the most lines kept. Zero means 1. When more than one
	// line is allowed the text is word-wrapped to the width first.
	MaxLines int `toml:"max_lines" yaml:"maxLines"`
	// CompleteLines pads the result with empty lines up to MaxLines, for
	// a fixed height.
	CompleteLines bool `toml:"complete_lines" yaml:"completeLines"`
	// Marker replaces the cut-off tail. Empty means DefaultMarker.
	Marker string `toml:"marker" yaml:"marker"`
}

// Truncate fits s into at most MaxLines lines of width cells. The last
// kept line ends in the marker when it was cut, or when later lines were
// dropped.
func Truncate(s string, width int, opts TruncateOptions) []string {
	maxLines := opts.MaxLines
	if maxLines <= 0 {
		maxLines = 1
	}
	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	var lines []string
	if maxLines > 1 {
		lines = Lines(s, width)
	} else {
		lines = strings.Split(s, "\n")
	}

	last := min(len(lines), maxLines) - 1
	out := append([]string(nil), lines[:last]...)
	out = append(out, truncateLine(lines[last], width, marker, len(lines) > maxLines))

	if opts.CompleteLines {
		for len(out) < maxLines {
			out = append(out, "")
		}
	}
	return out
}

// truncateLine cuts line to width cells, marker included.
func truncateLine(line string, width int, marker string, force bool) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(line)
	if w <= width && !force {
		return line
	}
	if !force {
		return ansi.Truncate(line, width, marker)
	}
	mw := ansi.StringWidth(marker)
	if mw >= width {
		return ansi.Truncate(marker, width, "")
	}
	if w+mw <= width {
		return line + marker
	}
	return ansi.Truncate(line, width-mw, "") + marker
}

// Truncated returns a text leaf holding Truncate(content), where
// maxWidth is in scene units.
func (m Metrics) Truncated(content string, color paint.Color, maxWidth float64, opts TruncateOptions) *scene.Node {
	lines := Truncate(content, m.columns(maxWidth), opts)
	return m.New(strings.Join(lines, "\n"), color)
}

// Truncated returns a cell-measured truncated text leaf.
func Truncated(content string, color paint.Color, maxWidth float64, opts TruncateOptions) *scene.Node {
	return Cells.Truncated(content, color, maxWidth, opts)
}
