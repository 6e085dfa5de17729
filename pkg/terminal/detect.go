// Package terminal identifies the terminal boxkit is drawing into and
// what it can show: colour depth, box-drawing runes, mouse reporting and
// size. Detection reads environment variables only and never queries the
// terminal.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown   Terminal = iota
	TermGhostty            // Ghostty
	TermKitty              // Kitty
	TermWezTerm            // WezTerm
	TermITerm2             // iTerm2
	TermAlacritty          // Alacritty
	TermTilix              // Tilix (VTE-based)
	TermGNOME              // GNOME Terminal (VTE-based)
	TermTmux               // tmux multiplexer
	TermScreen             // GNU Screen multiplexer
	TermVSCode             // VS Code integrated terminal
	TermEmacs              // Emacs vterm/eat
	TermLinux              // Linux virtual console
	TermDumb               // TERM=dumb or unset: no cursor addressing
	TermGeneric            // Unknown terminal with basic capabilities
)

var terminalNames = [...]string{
	TermUnknown:   "unknown",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermTilix:     "tilix",
	TermGNOME:     "gnome-terminal",
	TermTmux:      "tmux",
	TermScreen:    "screen",
	TermVSCode:    "vscode",
	TermEmacs:     "emacs",
	TermLinux:     "linux",
	TermDumb:      "dumb",
	TermGeneric:   "generic",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if t >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsTrueColor reports whether the terminal supports 24-bit colour.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermTilix, TermGNOME, TermVSCode:
		return true
	default:
		return false
	}
}

// SupportsMouse reports whether the terminal reports mouse motion, which
// the viewer needs for hover tooltips.
func (t Terminal) SupportsMouse() bool {
	switch t {
	case TermLinux, TermDumb, TermEmacs:
		return false
	default:
		return true
	}
}

// Detect identifies the terminal emulator from environment variables,
// in order of reliability:
//
//  1. TERM_PROGRAM (most terminals set this)
//  2. TERM (xterm-ghostty, xterm-kitty, alacritty, linux, dumb)
//  3. Terminal-specific vars (KITTY_WINDOW_ID, ITERM_SESSION_ID, ...)
//  4. VTE_VERSION for VTE-based terminals (GNOME, Tilix)
//  5. INSIDE_EMACS
//  6. TMUX / STY for multiplexers
//  7. LC_TERMINAL for iTerm2 over SSH
//  8. Fallback to TermGeneric
func Detect() Terminal {
	if tp := os.Getenv("TERM_PROGRAM"); tp != "" {
		switch strings.ToLower(tp) {
		case "ghostty":
			return TermGhostty
		case "kitty":
			return TermKitty
		case "wezterm":
			return TermWezTerm
		case "iterm.app":
			return TermITerm2
		case "vscode":
			return TermVSCode
		case "alacritty":
			return TermAlacritty
		case "tmux":
			return TermTmux
		}
	}

	switch term := os.Getenv("TERM"); {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	case term == "linux":
		return TermLinux
	case term == "dumb":
		return TermDumb
	case strings.HasPrefix(term, "screen") && os.Getenv("STY") != "":
		return TermScreen
	}

	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "":
		return TermKitty
	case os.Getenv("ITERM_SESSION_ID") != "":
		return TermITerm2
	case os.Getenv("WEZTERM_EXECUTABLE") != "":
		return TermWezTerm
	case os.Getenv("VTE_VERSION") != "":
		if os.Getenv("TILIX_ID") != "" {
			return TermTilix
		}
		return TermGNOME
	case os.Getenv("INSIDE_EMACS") != "":
		return TermEmacs
	// Multiplexers last so the inner terminal wins when it is known.
	case os.Getenv("TMUX") != "":
		return TermTmux
	case os.Getenv("STY") != "":
		return TermScreen
	case os.Getenv("LC_TERMINAL") == "iTerm2":
		return TermITerm2
	}

	return TermGeneric
}

// unicodeLocale reports whether the locale is UTF-8. LC_ALL overrides
// LC_CTYPE, which overrides LANG.
func unicodeLocale() bool {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(name); v != "" {
			v = strings.ToLower(v)
			return strings.Contains(v, "utf-8") || strings.Contains(v, "utf8")
		}
	}
	return false
}

func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
