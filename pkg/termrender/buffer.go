package termrender

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
)

// Cell is one terminal cell. A zero Rune marks the trailing half of a
// wide rune.
type Cell struct {
	Rune   rune
	FG, BG paint.Color
	HasFG  bool
	HasBG  bool
}

// Buffer is a fixed-size grid of cells, initialised to spaces.
type Buffer struct {
	Width, Height int
	cells         [][]Cell
}

// NewBuffer creates a blank buffer.
func NewBuffer(width, height int) *Buffer {
	width, height = max(0, width), max(0, height)
	b := &Buffer{Width: width, Height: height, cells: make([][]Cell, height)}
	for y := range b.cells {
		row := make([]Cell, width)
		for x := range row {
			row[x].Rune = ' '
		}
		b.cells[y] = row
	}
	return b
}

func (b *Buffer) in(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the cell at (x, y), or a blank cell outside the buffer.
func (b *Buffer) At(x, y int) Cell {
	if !b.in(x, y) {
		return Cell{Rune: ' '}
	}
	return b.cells[y][x]
}

// SetRune writes r with a foreground colour, keeping the background.
func (b *Buffer) SetRune(x, y int, r rune, fg paint.Color) {
	if !b.in(x, y) {
		return
	}
	c := &b.cells[y][x]
	c.Rune, c.FG, c.HasFG = r, fg, true
}

// SetBG sets the background colour of a cell, keeping its rune.
func (b *Buffer) SetBG(x, y int, bg paint.Color) {
	if !b.in(x, y) {
		return
	}
	c := &b.cells[y][x]
	c.BG, c.HasBG = bg, true
}

// Blit writes a multi-line string at (x, y), clipping to the buffer.
// Escape sequences are dropped and wide runes take two cells.
func (b *Buffer) Blit(s string, x, y int, fg paint.Color) {
	for dy, line := range strings.Split(ansi.Strip(s), "\n") {
		cx := x
		for _, r := range line {
			w := ansi.StringWidth(string(r))
			if w == 0 {
				continue
			}
			b.SetRune(cx, y+dy, r, fg)
			if w == 2 {
				b.SetRune(cx+1, y+dy, 0, fg)
			}
			cx += w
		}
	}
}

// String returns the buffer's runes without styling.
func (b *Buffer) String() string {
	lines := make([]string, b.Height)
	var sb strings.Builder
	for y, row := range b.cells {
		sb.Reset()
		for _, c := range row {
			if c.Rune != 0 {
				sb.WriteRune(c.Rune)
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// Render returns the buffer styled through r, one lipgloss style per run
// of cells sharing colours.
func (b *Buffer) Render(r *lipgloss.Renderer) string {
	lines := make([]string, b.Height)
	for y, row := range b.cells {
		var sb strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameStyle(row[x], row[start]) {
				continue
			}
			sb.WriteString(styleFor(r, row[start]).Render(runs(row[start:x])))
			start = x
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b Cell) bool {
	return a.HasFG == b.HasFG && a.HasBG == b.HasBG &&
		(!a.HasFG || a.FG == b.FG) && (!a.HasBG || a.BG == b.BG)
}

func styleFor(r *lipgloss.Renderer, c Cell) lipgloss.Style {
	s := r.NewStyle()
	if c.HasFG {
		s = s.Foreground(lipgloss.Color(c.FG.Hex()))
	}
	if c.HasBG {
		s = s.Background(lipgloss.Color(c.BG.Hex()))
	}
	return s
}

func runs(cells []Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		if c.Rune != 0 {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
