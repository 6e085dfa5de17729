package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FireCmd returns a bubbletea Cmd that sends a FireEvent for id after the
// given duration.
func FireCmd(id uint64, d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg {
			return FireEvent{ID: id}
		}
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FireEvent{ID: id}
	})
}
