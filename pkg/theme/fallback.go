package theme

import "gitlab.com/tinyland/lab/boxkit/pkg/paint"

// cubeLevels are the channel values of the xterm 6x6x6 cube (indices 16-231).
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// Adapt snaps every colour of t to the 256-colour palette when the
// terminal has less than 24-bit colour. Otherwise t is returned unchanged.
func Adapt(t Theme, colorDepth int) Theme {
	if colorDepth >= 24 {
		return t
	}
	for _, c := range []*paint.Color{
		&t.Background, &t.Foreground, &t.Dim, &t.Accent,
		&t.Surface, &t.Border, &t.Shadow,
		&t.TooltipBackground, &t.TooltipForeground, &t.TooltipBorder,
	} {
		*c = Snap256(*c)
	}
	return t
}

// Index256 returns the 256-colour palette index nearest to c, choosing
// between the colour cube and the grayscale ramp. Ties go to the cube.
func Index256(c paint.Color) int {
	r, g, b := c.RGB()
	cube := 16 + 36*nearestLevel(r) + 6*nearestLevel(g) + nearestLevel(b)
	gray := grayIndex(r, g, b)
	if distance(c, paletteColor(gray)) < distance(c, paletteColor(cube)) {
		return gray
	}
	return cube
}

// Snap256 returns the colour of the palette entry nearest to c.
func Snap256(c paint.Color) paint.Color {
	return paletteColor(Index256(c))
}

// paletteColor returns the RGB value of a cube or grayscale index.
func paletteColor(idx int) paint.Color {
	if idx >= 232 {
		v := paint.Color(8 + (idx-232)*10)
		return v<<16 | v<<8 | v
	}
	idx -= 16
	r, g, b := cubeLevels[idx/36], cubeLevels[idx/6%6], cubeLevels[idx%6]
	return paint.Color(r)<<16 | paint.Color(g)<<8 | paint.Color(b)
}

func nearestLevel(v uint8) int {
	best := 0
	for i, lv := range cubeLevels {
		if absDiff(v, lv) < absDiff(v, cubeLevels[best]) {
			best = i
		}
	}
	return best
}

// grayIndex maps the channel average onto the 24-step ramp 8, 18, ..., 238.
func grayIndex(r, g, b uint8) int {
	avg := (int(r) + int(g) + int(b)) / 3
	return 232 + min(max((avg-3)/10, 0), 23)
}

// distance is the squared Euclidean distance between two colours.
func distance(a, b paint.Color) int {
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	dr, dg, db := absDiff(ar, br), absDiff(ag, bg), absDiff(ab, bb)
	return dr*dr + dg*dg + db*db
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
