// Package theme holds named colour palettes for scenes: the canvas, box
// surfaces and tooltips.
package theme

import (
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/boxkit/pkg/paint"
)

// Theme is a complete palette.
type Theme struct {
	Name string

	// Canvas
	Background paint.Color
	Foreground paint.Color // default text colour
	Dim        paint.Color
	Accent     paint.Color

	// Boxes
	Surface paint.Color
	Border  paint.Color
	Shadow  paint.Color

	// Tooltips
	TooltipBackground paint.Color
	TooltipForeground paint.Color
	TooltipBorder     paint.Color
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to Default if not found.
func Get(name string) Theme {
	t, _ := Lookup(name)
	return t
}

// Lookup returns a named theme and whether it exists. Unknown names yield
// the default theme.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t, true
	}
	return registry["default"], false
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a theme under its lowercase name, replacing any theme
// already registered with that name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
