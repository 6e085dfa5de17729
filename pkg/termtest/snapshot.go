package termtest

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Snapshot captures the rendered output for comparison testing.
type Snapshot struct {
	Name     string // Descriptive name for the snapshot
	Terminal string // Terminal profile name used
	Content  string // The rendered string, escape sequences included
}

// CaptureSnapshot renders for a profile and stores the result.
func CaptureSnapshot(name string, profile TerminalProfile, renderFn func(TerminalProfile) string) Snapshot {
	return Snapshot{
		Name:     name,
		Terminal: profile.Name,
		Content:  renderFn(profile),
	}
}

// Plain returns the content with escape sequences removed.
func (s Snapshot) Plain() string {
	return ansi.Strip(s.Content)
}

// Width returns the widest line in cells.
func (s Snapshot) Width() int {
	w := 0
	for _, l := range ttSplitLines(s.Content) {
		w = max(w, ansi.StringWidth(l))
	}
	return w
}

// Height returns the number of lines.
func (s Snapshot) Height() int {
	return len(ttSplitLines(s.Content))
}

// Diff describes a single line difference between two snapshots.
type Diff struct {
	Line     int    // 1-based line number where the difference occurs
	Expected string // The expected line content
	Actual   string // The actual line content
}

// CompareSnapshots checks the visible text of two snapshots for
// differences, ignoring styling. Returns nil if they read the same.
func CompareSnapshots(expected, actual Snapshot) []Diff {
	expectedLines := ttSplitLines(expected.Plain())
	actualLines := ttSplitLines(actual.Plain())

	var diffs []Diff
	for i := range max(len(expectedLines), len(actualLines)) {
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			diffs = append(diffs, Diff{
				Line:     i + 1,
				Expected: eLine,
				Actual:   aLine,
			})
		}
	}
	return diffs
}

// ttSplitLines splits a string into lines, handling the edge case where
// an empty string should produce a single empty line for comparison.
func ttSplitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
