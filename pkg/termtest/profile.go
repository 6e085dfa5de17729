// Package termtest provides terminal emulator profiles and snapshot
// helpers for checking that rendered scenes read the same across
// terminals. It is used in tests.
package termtest

import (
	"os"
	"testing"

	"github.com/muesli/termenv"
)

// TerminalProfile describes a terminal as boxkit sees it: the
// environment it sets and the capabilities detection should derive.
type TerminalProfile struct {
	Name    string            // Human-readable terminal name
	EnvVars map[string]string // Environment vars this terminal sets
	Term    string            // Expected detected terminal name

	ColorProfile termenv.Profile // Colour profile output is rendered for
	Unicode      bool            // Box-drawing and shade runes render
	Mouse        bool            // Mouse motion is reported
}

// envVars lists every variable detection inspects.
var envVars = []string{
	"TERM_PROGRAM", "TERM", "COLORTERM",
	"KITTY_WINDOW_ID", "ITERM_SESSION_ID", "WEZTERM_EXECUTABLE",
	"TILIX_ID", "VTE_VERSION", "LC_TERMINAL",
	"INSIDE_EMACS", "TMUX", "STY",
	"SSH_TTY", "SSH_CONNECTION", "SSH_CLIENT",
	"LC_ALL", "LC_CTYPE", "LANG",
	"COLUMNS", "LINES",
}

// EnvVars returns the names of every variable terminal detection reads.
func EnvVars() []string {
	return append([]string(nil), envVars...)
}

// ClearEnv unsets every detection variable for the duration of the test.
func ClearEnv(t testing.TB) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

// Apply clears the detection variables and sets the profile's own for
// the duration of the test.
func (p TerminalProfile) Apply(t testing.TB) {
	t.Helper()
	ClearEnv(t)
	for k, v := range p.EnvVars {
		t.Setenv(k, v)
	}
}

const utf8Locale = "en_US.UTF-8"

// Profiles returns all known terminal profiles.
func Profiles() []TerminalProfile {
	return []TerminalProfile{
		{
			Name: "Ghostty",
			EnvVars: map[string]string{
				"TERM_PROGRAM": "ghostty",
				"TERM":         "xterm-ghostty",
				"COLORTERM":    "truecolor",
				"LANG":         utf8Locale,
			},
			Term:         "ghostty",
			ColorProfile: termenv.TrueColor,
			Unicode:      true,
			Mouse:        true,
		},
		{
			Name: "Kitty",
			EnvVars: map[string]string{
				"TERM":            "xterm-kitty",
				"KITTY_WINDOW_ID": "1",
				"LANG":            utf8Locale,
			},
			Term:         "kitty",
			ColorProfile: termenv.TrueColor,
			Unicode:      true,
			Mouse:        true,
		},
		{
			Name: "iTerm2",
			EnvVars: map[string]string{
				"TERM_PROGRAM":     "iTerm.app",
				"TERM":             "xterm-256color",
				"ITERM_SESSION_ID": "w0t0p0:ABCDEF-1234",
				"LC_CTYPE":         "UTF-8",
			},
			Term:         "iterm2",
			ColorProfile: termenv.TrueColor,
			Unicode:      true,
			Mouse:        true,
		},
		{
			Name: "WezTerm",
			EnvVars: map[string]string{
				"TERM_PROGRAM": "WezTerm",
				"TERM":         "xterm-256color",
				"LANG":         utf8Locale,
			},
			Term:         "wezterm",
			ColorProfile: termenv.TrueColor,
			Unicode:      true,
			Mouse:        true,
		},
		{
			Name: "GNOME Terminal",
			EnvVars: map[string]string{
				"TERM":        "xterm-256color",
				"VTE_VERSION": "7600",
				"LANG":        utf8Locale,
			},
			Term:         "gnome-terminal",
			ColorProfile: termenv.TrueColor,
			Unicode:      true,
			Mouse:        true,
		},
		{
			Name: "Apple Terminal",
			EnvVars: map[string]string{
				"TERM_PROGRAM": "Apple_Terminal",
				"TERM":         "xterm-256color",
				"LANG":         utf8Locale,
			},
			Term:         "generic",
			ColorProfile: termenv.ANSI256,
			Unicode:      true,
			Mouse:        true,
		},
		{
			Name: "tmux",
			EnvVars: map[string]string{
				"TERM": "screen-256color",
				"TMUX": "/tmp/tmux-1000/default,1234,0",
				"LANG": utf8Locale,
			},
			Term:         "tmux",
			ColorProfile: termenv.ANSI256,
			Unicode:      true,
			Mouse:        true,
		},
		{
			Name: "Linux console",
			EnvVars: map[string]string{
				"TERM": "linux",
				"LANG": "C",
			},
			Term:         "linux",
			ColorProfile: termenv.ANSI,
		},
		{
			Name: "dumb",
			EnvVars: map[string]string{
				"TERM": "dumb",
				"LANG": utf8Locale,
			},
			Term:         "dumb",
			ColorProfile: termenv.Ascii,
		},
	}
}

// ProfileByName returns the profile matching the given name, or nil if not found.
func ProfileByName(name string) *TerminalProfile {
	for _, p := range Profiles() {
		if p.Name == name {
			cp := p
			return &cp
		}
	}
	return nil
}
