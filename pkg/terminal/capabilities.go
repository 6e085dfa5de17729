package terminal

import (
	"os"
	"sync"
)

// Capabilities is the cached terminal capability summary for the current
// session.
type Capabilities struct {
	Term      Terminal // Detected terminal emulator
	Size      Size     // Terminal dimensions
	TrueColor bool     // 24-bit color support
	Unicode   bool     // Box-drawing and shade runes render
	Mouse     bool     // Mouse motion is reported
	SSH       bool     // Running over SSH
	Mux       bool     // Inside any multiplexer (tmux, screen)
}

// ColorDepth returns bits per colour: 24 for true colour, otherwise 8.
func (c *Capabilities) ColorDepth() int {
	if c.TrueColor {
		return 24
	}
	return 8
}

var (
	cached     *Capabilities
	detectOnce sync.Once
	mu         sync.Mutex // guards ForceRefresh reset
)

// DetectCapabilities performs terminal detection once and caches the
// result. Safe to call from multiple goroutines.
func DetectCapabilities() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// ForceRefresh re-detects terminal capabilities, replacing the cached
// value.
func ForceRefresh() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	detectOnce = sync.Once{}
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

func detect() *Capabilities {
	term := Detect()
	tmux := os.Getenv("TMUX") != ""
	screen := os.Getenv("STY") != ""

	// True color: either the terminal natively supports it, or
	// COLORTERM=truecolor is set (common in well-configured setups).
	trueColor := term.SupportsTrueColor()
	if !trueColor {
		ct := os.Getenv("COLORTERM")
		trueColor = ct == "truecolor" || ct == "24bit"
	}

	return &Capabilities{
		Term:      term,
		Size:      GetSize(),
		TrueColor: trueColor,
		Unicode:   term != TermDumb && unicodeLocale(),
		Mouse:     term.SupportsMouse(),
		SSH:       isSSH(),
		Mux:       tmux || screen,
	}
}
