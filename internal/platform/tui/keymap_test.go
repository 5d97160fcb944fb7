package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/haskell-hop/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('w'), core.ActionJump},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('d'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runeKey('x'), core.ActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionNone, t0)

	if f := h.Frame(t0.Add(99 * time.Millisecond)); !f.Held(core.ActionRight) {
		t.Error("key released inside the hold window")
	}
	if f := h.Frame(t0.Add(99 * time.Millisecond)); f.Held(core.ActionNone) {
		t.Error("ActionNone tracked")
	}

	// A repeat event extends the hold.
	h.Press(core.ActionRight, t0.Add(80*time.Millisecond))
	if f := h.Frame(t0.Add(150 * time.Millisecond)); !f.Held(core.ActionRight) {
		t.Error("repeat did not extend the hold")
	}

	if f := h.Frame(t0.Add(180 * time.Millisecond)); f.Held(core.ActionRight) {
		t.Error("key still held after the window")
	}
	if len(h.last) != 0 {
		t.Errorf("expired keys kept: %v", h.last)
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(time.Second)
	now := time.Now()
	h.Press(core.ActionJump, now)
	h.Press(core.ActionLeft, now)
	h.Release()
	if f := h.Frame(now); f.Held(core.ActionJump) || f.Held(core.ActionLeft) {
		t.Error("keys held after Release")
	}
}
