package termtest

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/muesli/termenv"
)

// ValidateRunes checks that a snapshot only uses runes the profile can
// show: ASCII when the profile lacks Unicode.
func ValidateRunes(profile TerminalProfile, s Snapshot) error {
	if profile.Unicode {
		return nil
	}
	for i, line := range ttSplitLines(s.Plain()) {
		for _, r := range line {
			if r >= utf8.RuneSelf {
				return fmt.Errorf("terminal %q: line %d: rune %q needs Unicode", profile.Name, i+1, r)
			}
		}
	}
	return nil
}

// ValidateColor checks that a snapshot carries no colour escapes when the
// profile has no colour.
func ValidateColor(profile TerminalProfile, s Snapshot) error {
	if profile.ColorProfile != termenv.Ascii {
		return nil
	}
	if strings.Contains(s.Content, "\x1b[") {
		return fmt.Errorf("terminal %q: colour escapes in a colourless profile", profile.Name)
	}
	return nil
}
