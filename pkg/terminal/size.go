package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// Size is the terminal size in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal dimensions. It tries, in order:
//  1. stdout
//  2. stderr (in case stdout is redirected)
//  3. COLUMNS/LINES environment variables
//  4. 80x24
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s := GetSizeFromFd(f.Fd()); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	return getSizeFromEnv()
}

// GetSizeFromFd returns the size of the terminal on fd, or a zero Size
// if fd is not a terminal.
func GetSizeFromFd(fd uintptr) Size {
	if !term.IsTerminal(fd) {
		return Size{}
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return Size{}
	}
	return Size{Cols: w, Rows: h}
}

// getSizeFromEnv reads terminal dimensions from COLUMNS/LINES environment
// variables, falling back to 80x24 defaults.
func getSizeFromEnv() Size {
	return Size{Cols: envInt("COLUMNS", 80), Rows: envInt("LINES", 24)}
}

// envInt reads a positive integer from the named environment variable,
// or returns fallback.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
