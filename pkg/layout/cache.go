package layout

import (
	"fmt"
	"strconv"
	"sync"

	"gitlab.com/tinyland/lab/boxkit/pkg/geom"
)

// Cache stores previously computed arrangements so that rebuilding an
// identical layout every render frame does not redo the arithmetic.
// Arrangements are pure functions of child sizes and options, so a hit
// is always exact. It is safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	linear map[string]Arrangement
	flows  map[string]Flow
	hits   int64
	misses int64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		linear: make(map[string]Arrangement),
		flows:  make(map[string]Flow),
	}
}

// Linear returns ArrangeLinear(sizes, dir, spacing, align), cached.
func (c *Cache) Linear(sizes []geom.Size, dir Direction, spacing float64, align geom.Alignment) Arrangement {
	key := makeKey(fmt.Sprintf("L%d|%s|%d", dir, fnum(spacing), align), sizes)

	c.mu.RLock()
	a, ok := c.linear[key]
	c.mu.RUnlock()
	if ok {
		c.count(true)
		return Arrangement{Size: a.Size, Frames: append([]geom.Rect(nil), a.Frames...)}
	}

	c.count(false)
	a = ArrangeLinear(sizes, dir, spacing, align)
	stored := Arrangement{Size: a.Size, Frames: append([]geom.Rect(nil), a.Frames...)}
	c.mu.Lock()
	c.linear[key] = stored
	c.mu.Unlock()
	return a
}

// Grid returns ArrangeGrid(sizes, columns, spacing, align), cached.
func (c *Cache) Grid(sizes []geom.Size, columns int, spacing Spacing, align geom.Alignment) Flow {
	key := makeKey(fmt.Sprintf("G%d|%s|%s|%d", columns, fnum(spacing.Row), fnum(spacing.Column), align), sizes)
	return c.flow(key, func() Flow { return ArrangeGrid(sizes, columns, spacing, align) })
}

func (c *Cache) wrap(sizes []geom.Size, w wrapConfig) Flow {
	key := makeKey(fmt.Sprintf("W%s|%s|%d|%d", fnum(w.wrapWidth), fnum(w.spacing), w.alignX, w.alignY), sizes)
	return c.flow(key, func() Flow { return arrangeWrap(sizes, w) })
}

func (c *Cache) flow(key string, compute func() Flow) Flow {
	c.mu.RLock()
	f, ok := c.flows[key]
	c.mu.RUnlock()
	if ok {
		c.count(true)
		return f.clone()
	}

	c.count(false)
	f = compute()
	c.mu.Lock()
	c.flows[key] = f.clone()
	c.mu.Unlock()
	return f
}

func (c *Cache) count(hit bool) {
	c.mu.Lock()
	if hit {
		c.hits++
	} else {
		c.misses++
	}
	c.mu.Unlock()
}

// Invalidate clears all cached entries.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.linear = make(map[string]Arrangement)
	c.flows = make(map[string]Flow)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.linear) + len(c.flows)
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// makeKey builds a deterministic key from an options prefix and the
// child sizes.
func makeKey(prefix string, sizes []geom.Size) string {
	buf := make([]byte, 0, len(prefix)+len(sizes)*16)
	buf = append(buf, prefix...)
	for _, s := range sizes {
		buf = append(buf, '|')
		buf = strconv.AppendFloat(buf, s.Width, 'g', -1, 64)
		buf = append(buf, 'x')
		buf = strconv.AppendFloat(buf, s.Height, 'g', -1, 64)
	}
	return string(buf)
}

func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
