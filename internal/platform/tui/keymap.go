package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/haskell-hop/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "esc", "b":
		return core.ActionBack
	case "w", "up", " ":
		return core.ActionJump
	case "a", "left":
		return core.ActionLeft
	case "d", "right":
		return core.ActionRight
	}
	return core.ActionNone
}

// HoldTracker turns key press events into held keys. Terminals report
// presses and auto-repeats but no releases, so a key counts as held
// until window has passed since its last event.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a press or repeat of a at the given time.
func (h *HoldTracker) Press(a core.Action, at time.Time) {
	if a == core.ActionNone {
		return
	}
	h.last[a] = at
}

// Frame returns the actions held at now and forgets expired ones.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, at := range h.last {
		if now.Sub(at) < h.window {
			frame.Set(a)
		} else {
			delete(h.last, a)
		}
	}
	return frame
}

// Release forgets every held key.
func (h *HoldTracker) Release() {
	clear(h.last)
}
