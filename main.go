// boxkit renders box-model scenes described in YAML.
//
// A scene file declares rows, columns, grids, wrapped rows, decorated
// boxes, hit areas and tooltips. boxkit lays the scene out and either
// prints it to the terminal, writes it as a PNG, or opens an interactive
// viewer where tooltips follow the mouse.
//
// Usage:
//
//	boxkit [flags] [scene.yaml]
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/boxkit/config.toml)
//	-theme string     Palette name (overrides config)
//	-png string       Write the scene as a PNG to this path (cached, see [cache])
//	-tui              Launch the interactive viewer
//	-hover string     Show the tooltip of this named node before rendering
//	-width int        Terminal width override (0 = auto-detect)
//	-list-themes      Print available palettes and exit
//	-export-theme     Print the selected palette as TOML and exit
//	-print-config     Print the effective configuration as TOML and exit
//	-log string       Append logs to this file instead of stderr
//	-verbose          Enable verbose logging
//	-version          Print version and exit
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/boxkit/pkg/app"
	"gitlab.com/tinyland/lab/boxkit/pkg/cache"
	"gitlab.com/tinyland/lab/boxkit/pkg/config"
	"gitlab.com/tinyland/lab/boxkit/pkg/layout"
	"gitlab.com/tinyland/lab/boxkit/pkg/raster"
	"gitlab.com/tinyland/lab/boxkit/pkg/scenefile"
	"gitlab.com/tinyland/lab/boxkit/pkg/terminal"
	"gitlab.com/tinyland/lab/boxkit/pkg/termrender"
	"gitlab.com/tinyland/lab/boxkit/pkg/text"
	"gitlab.com/tinyland/lab/boxkit/pkg/theme"
	"gitlab.com/tinyland/lab/boxkit/pkg/tooltip"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// defaultScene is rendered when no scene file is given.
const defaultScene = "scenes/demo.yaml"

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		themeName   = flag.String("theme", "", "Palette name (overrides config)")
		pngPath     = flag.String("png", "", "Write the scene as a PNG to this path")
		runTUI      = flag.Bool("tui", false, "Launch the interactive viewer")
		hover       = flag.String("hover", "", "Show the tooltip of this named node before rendering")
		termWidth   = flag.Int("width", 0, "Terminal width override (0 = auto-detect)")
		listThemes  = flag.Bool("list-themes", false, "Print available palettes and exit")
		exportTheme = flag.Bool("export-theme", false, "Print the selected palette as TOML and exit")
		printConfig = flag.Bool("print-config", false, "Print the effective configuration as TOML and exit")
		logPath     = flag.String("log", "", "Append logs to this file instead of stderr")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("boxkit %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Setup logging. The viewer owns the terminal, so it only logs to a file.
	logLevel := cfg.General.Level()
	if *verbose {
		logLevel = slog.LevelDebug
	}
	var logOut io.Writer = os.Stderr
	if *runTUI {
		logOut = io.Discard
	}
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	palette, err := selectTheme(cfg.Theme, *themeName)
	if err != nil {
		logger.Error("theme load failed", "error", err)
		os.Exit(1)
	}

	switch {
	case *listThemes:
		fmt.Println(strings.Join(theme.Names(), "\n"))
		return
	case *exportTheme:
		data, err := theme.SaveToTOML(theme.Get(palette))
		if err != nil {
			logger.Error("theme export failed", "error", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	case *printConfig:
		if err := config.Write(os.Stdout, cfg); err != nil {
			logger.Error("config export failed", "error", err)
			os.Exit(1)
		}
		return
	}

	scenePath := defaultScene
	if flag.NArg() > 0 {
		scenePath = flag.Arg(0)
	}
	file, err := scenefile.Load(scenePath)
	if err != nil {
		logger.Error("scene load failed", "path", scenePath, "error", err)
		os.Exit(1)
	}

	var layoutCache *layout.Cache
	if cfg.Layout.Cache {
		layoutCache = layout.NewCache()
	}
	builder := scenefile.Builder{
		Engine:  layout.NewEngine(layoutCache).WithLogger(logger),
		Tooltip: cfg.Tooltip.Options(),
		Logger:  logger,
	}

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	profile := termenv.Ascii
	if stdoutTTY {
		profile = termenv.EnvColorProfile()
	}
	caps := terminal.DetectCapabilities()
	logger.Debug("terminal detected",
		"term", caps.Term,
		"size", fmt.Sprintf("%dx%d", caps.Size.Cols, caps.Size.Rows),
		"color_depth", caps.ColorDepth(),
		"unicode", caps.Unicode,
		"mouse", caps.Mouse,
		"ssh", caps.SSH,
	)

	// Determine operation mode
	switch {
	case *runTUI:
		if !stdoutTTY {
			logger.Error("the viewer needs a terminal")
			os.Exit(1)
		}
		renderer := termrender.New(termrender.Options{
			Output:  os.Stdout,
			Profile: profile,
			ASCII:   !caps.Unicode,
			Logger:  logger,
		})
		model, err := app.New(file, app.Options{
			Builder:    builder,
			Theme:      palette,
			ColorDepth: colorDepth(profile),
			Renderer:   renderer,
			Load:       func() (*scenefile.File, error) { return scenefile.Load(scenePath) },
			Logger:     logger,
		})
		if err != nil {
			logger.Error("scene build failed", "error", err)
			os.Exit(1)
		}
		progOpts := []tea.ProgramOption{tea.WithAltScreen()}
		if caps.Mouse {
			progOpts = append(progOpts, tea.WithMouseAllMotion())
		} else {
			logger.Warn("terminal does not report mouse motion; tooltips will not show", "term", caps.Term)
		}
		p := tea.NewProgram(model, progOpts...)
		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", "error", err)
			os.Exit(1)
		}

	case *pngPath != "":
		th := theme.Get(palette)
		builder.Metrics = cfg.Render.Metrics()
		r := raster.New(raster.Options{
			Scale:      cfg.Render.Scale,
			Background: &th.Background,
			MaxWidth:   cfg.Render.MaxWidth,
			MaxHeight:  cfg.Render.MaxHeight,
			Logger:     logger,
		})
		store, key := openRenderCache(cfg, scenePath, th, *hover, logger)
		if err := exportImage(r, store, key, builder, th, file, *hover, *pngPath, logger); err != nil {
			logger.Error("png export failed", "error", err)
			os.Exit(1)
		}

	default:
		th := theme.Adapt(theme.Get(palette), colorDepth(profile))
		builder.Metrics = text.Cells
		s, err := build(builder, th, file, *hover)
		if err != nil {
			logger.Error("scene build failed", "error", err)
			os.Exit(1)
		}
		width := *termWidth
		if width <= 0 && stdoutTTY {
			width = caps.Size.Cols
		}
		r := termrender.New(termrender.Options{
			Output:  os.Stdout,
			Profile: profile,
			Width:   width,
			ASCII:   !caps.Unicode,
			Logger:  logger,
		})
		fmt.Println(r.Render(s.Root))
	}
}

// selectTheme registers the configured theme file, if any, and returns
// the palette name to use: the flag, then the file's theme, then the
// configured name.
func selectTheme(cfg config.ThemeConfig, override string) (string, error) {
	name := cfg.Name
	if cfg.File != "" {
		t, err := theme.LoadFile(cfg.File)
		if err != nil {
			return "", err
		}
		theme.Register(t)
		name = t.Name
	}
	if override != "" {
		name = override
	}
	if _, ok := theme.Lookup(name); !ok {
		return "", fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(theme.Names(), ", "))
	}
	return name, nil
}

// build builds a static scene coloured by th. When hover names a node
// with a tooltip, the tooltip is shown over the node's centre without
// waiting for its delay.
func build(b scenefile.Builder, th theme.Theme, f *scenefile.File, hover string) (*scenefile.Scene, error) {
	sched := app.NewScheduler()
	b.Tooltip.Scheduler = sched
	b.Tooltip = th.Tooltip(b.Tooltip)
	b.Foreground = th.Foreground

	s, err := b.Build(f)
	if err != nil {
		return nil, err
	}
	if hover == "" {
		return s, nil
	}
	target, ok := s.Named[hover]
	if !ok {
		return nil, fmt.Errorf("no node named %q", hover)
	}
	tt := s.TooltipFor(target)
	if tt == nil {
		return nil, fmt.Errorf("node %q has no tooltip", hover)
	}
	tt.PointerOver(tooltip.Event{X: target.Width / 2, Y: target.Height / 2})
	sched.FireAll()
	return s, nil
}

// openRenderCache opens the PNG cache and derives the key for this
// export. It returns a nil store when caching is off or unavailable.
func openRenderCache(cfg *config.Config, scenePath string, th theme.Theme, hover string, logger *slog.Logger) (*cache.Store, string) {
	if !cfg.Cache.Enabled {
		return nil, ""
	}
	sceneData, err := os.ReadFile(scenePath)
	if err != nil {
		return nil, ""
	}
	var cfgData bytes.Buffer
	if err := config.Write(&cfgData, cfg); err != nil {
		return nil, ""
	}
	themeData, err := theme.SaveToTOML(th)
	if err != nil {
		return nil, ""
	}
	store, err := cache.NewStore(cache.Config{
		Dir:       cfg.Cache.Directory(),
		MaxSizeMB: cfg.Cache.MaxSizeMB,
		TTL:       cfg.Cache.TTL.Duration,
		Logger:    logger,
	})
	if err != nil {
		logger.Warn("render cache unavailable", "error", err)
		return nil, ""
	}
	key := cache.Key([]byte(version), sceneData, cfgData.Bytes(), themeData, []byte(hover))
	return store, key
}

// exportImage writes the scene to out. PNG exports go through store when
// it is set: a hit skips building and rasterising.
func exportImage(r *raster.Renderer, store *cache.Store, key string, b scenefile.Builder, th theme.Theme, f *scenefile.File, hover, out string, logger *slog.Logger) error {
	isPNG := strings.EqualFold(filepath.Ext(out), ".png")
	if store != nil && isPNG {
		if data, ok := store.Get(key); ok {
			logger.Info("wrote png from cache", "path", out, "key", key)
			return os.WriteFile(out, data, 0o644)
		}
	}

	s, err := build(b, th, f, hover)
	if err != nil {
		return err
	}
	if store == nil || !isPNG {
		if err := r.Save(out, s.Root); err != nil {
			return err
		}
		logger.Info("wrote image", "path", out, "canvas", raster.Canvas(s.Root))
		return nil
	}

	var buf bytes.Buffer
	if err := r.Encode(&buf, s.Root); err != nil {
		return err
	}
	if err := store.Put(key, buf.Bytes()); err != nil {
		logger.Warn("render cache write failed", "error", err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	logger.Info("wrote png", "path", out, "canvas", raster.Canvas(s.Root))
	return nil
}

// colorDepth maps a terminal profile to bits per colour.
func colorDepth(p termenv.Profile) int {
	switch p {
	case termenv.TrueColor:
		return 24
	case termenv.ANSI256:
		return 8
	case termenv.ANSI:
		return 4
	default:
		return 1
	}
}
