package layout

import (
	"log/slog"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
)

// Engine builds layouts, optionally memoising arrangements in a Cache.
// The zero value computes every arrangement from scratch and does not log.
type Engine struct {
	cache  *Cache
	logger *slog.Logger
}

var defaultEngine = &Engine{}

// NewEngine creates an Engine. A nil cache disables memoisation.
func NewEngine(cache *Cache) *Engine {
	return &Engine{cache: cache}
}

// WithLogger sets the logger used for debug traces of each layout.
func (e *Engine) WithLogger(l *slog.Logger) *Engine {
	e.logger = l
	return e
}

// Cache returns the engine's arrangement cache, or nil.
func (e *Engine) Cache() *Cache {
	return e.cache
}

func (e *Engine) trace(kind string, children int, size geom.Size) {
	if e.logger == nil {
		return
	}
	e.logger.Debug("layout", "kind", kind, "children", children, "width", size.Width, "height", size.Height)
}

func (e *Engine) arrangeLinear(sizes []geom.Size, dir Direction, spacing float64, align geom.Alignment) Arrangement {
	if e.cache == nil {
		return ArrangeLinear(sizes, dir, spacing, align)
	}
	return e.cache.Linear(sizes, dir, spacing, align)
}

func (e *Engine) arrangeGrid(sizes []geom.Size, columns int, spacing Spacing, align geom.Alignment) Flow {
	if e.cache == nil {
		return ArrangeGrid(sizes, columns, spacing, align)
	}
	return e.cache.Grid(sizes, columns, spacing, align)
}

func (e *Engine) arrangeWrap(sizes []geom.Size, c wrapConfig) Flow {
	if e.cache == nil {
		return arrangeWrap(sizes, c)
	}
	return e.cache.wrap(sizes, c)
}
