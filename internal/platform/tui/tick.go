// Package tui runs the game in a terminal with Bubble Tea, locally or
// over SSH, and shows the run history.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/haskell-hop/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick message
// one simulation tick from now.
func tickCmd() tea.Cmd {
	return tea.Tick(core.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
