package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tinyland/lab/boxkit/pkg/style"
	"gitlab.com/tinyland/lab/boxkit/pkg/text"
	"gitlab.com/tinyland/lab/boxkit/pkg/tooltip"
)

// Config is the complete configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Render  RenderConfig  `toml:"render"`
	Layout  LayoutConfig  `toml:"layout"`
	Tooltip TooltipConfig `toml:"tooltip"`
	Theme   ThemeConfig   `toml:"theme"`
	Cache   CacheConfig   `toml:"cache"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// Level parses LogLevel, falling back to info.
func (g GeneralConfig) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(g.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// RenderConfig controls the PNG and terminal backends.
type RenderConfig struct {
	// CellWidth and CellHeight convert text cells to scene units for the
	// PNG backend.
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	// Scale is PNG pixels per scene unit.
	Scale float64 `toml:"scale"`
	// MaxWidth and MaxHeight bound exported PNGs. Zero is unbounded.
	MaxWidth  int `toml:"max_width"`
	MaxHeight int `toml:"max_height"`
}

// Metrics returns the text metrics for the PNG backend.
func (r RenderConfig) Metrics() text.Metrics {
	return text.Metrics{CellWidth: r.CellWidth, CellHeight: r.CellHeight}
}

// LayoutConfig controls the layout engine.
type LayoutConfig struct {
	// Cache memoises arrangements across rebuilds.
	Cache bool `toml:"cache"`
}

// TooltipConfig holds the defaults applied to every tooltip.
type TooltipConfig struct {
	Delay           Duration               `toml:"delay"`
	Placement       tooltip.Placement      `toml:"placement"`
	PositionTarget  tooltip.PositionTarget `toml:"position_target"`
	OffsetX         float64                `toml:"offset_x"`
	OffsetY         float64                `toml:"offset_y"`
	StopPropagation bool                   `toml:"stop_propagation"`
	Style           style.Options          `toml:"style"`
}

// Options converts the section into tooltip options.
func (t TooltipConfig) Options() tooltip.Options {
	return tooltip.Options{
		Placement:       t.Placement,
		PositionTarget:  t.PositionTarget,
		OffsetX:         t.OffsetX,
		OffsetY:         t.OffsetY,
		Delay:           t.Delay.Duration,
		StopPropagation: tooltip.Bool(t.StopPropagation),
		Style:           t.Style,
	}
}

// ThemeConfig selects a palette.
type ThemeConfig struct {
	// Name is a built-in or registered theme.
	Name string `toml:"name"`
	// File, when set, is a TOML theme loaded and registered at startup.
	File string `toml:"file"`
}

// CacheConfig controls the on-disk cache of exported PNGs.
type CacheConfig struct {
	Enabled bool `toml:"enabled"`
	// Dir defaults to $XDG_CACHE_HOME/boxkit/renders.
	Dir       string   `toml:"dir"`
	MaxSizeMB int      `toml:"max_size_mb"`
	TTL       Duration `toml:"ttl"`
}

// Directory returns Dir, or the default cache directory when Dir is empty.
func (c CacheConfig) Directory() string {
	if c.Dir != "" {
		return c.Dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(xdgCacheHome(home), appName, "renders")
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("render: cell size must be positive, got %vx%v", c.Render.CellWidth, c.Render.CellHeight))
	}
	if c.Render.Scale <= 0 {
		errs = append(errs, fmt.Errorf("render: scale must be positive, got %v", c.Render.Scale))
	}
	if c.Render.MaxWidth < 0 || c.Render.MaxHeight < 0 {
		errs = append(errs, errors.New("render: max size must not be negative"))
	}
	if c.Cache.MaxSizeMB < 0 {
		errs = append(errs, fmt.Errorf("cache: max_size_mb must not be negative, got %d", c.Cache.MaxSizeMB))
	}
	if strings.TrimSpace(c.Theme.Name) == "" && c.Theme.File == "" {
		errs = append(errs, errors.New("theme: name or file is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
