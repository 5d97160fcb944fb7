package main

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/haskell-hop/internal/config"
	"github.com/vovakirdan/haskell-hop/internal/core"
	"github.com/vovakirdan/haskell-hop/internal/games/hop"
	"github.com/vovakirdan/haskell-hop/internal/scene"
)

func TestScriptedInput(t *testing.T) {
	tests := []struct {
		tick, every int
		move        core.Action
		jump, right bool
	}{
		{tick: 1, every: 1, jump: true},
		{tick: 3, every: 2},
		{tick: 4, every: 2, jump: true},
		{tick: 4, every: 0},
		{tick: 5, every: 0, move: core.ActionRight, right: true},
	}
	for _, tt := range tests {
		in := scriptedInput(tt.tick, tt.every, tt.move)
		if in.Held(core.ActionJump) != tt.jump || in.Held(core.ActionRight) != tt.right {
			t.Errorf("scriptedInput(%d, %d, %v) = %+v", tt.tick, tt.every, tt.move, in)
		}
		if in.Held(core.ActionNone) {
			t.Errorf("scriptedInput(%d, %d) holds ActionNone", tt.tick, tt.every)
		}
	}
}

func TestParseMove(t *testing.T) {
	for s, want := range map[string]core.Action{"": core.ActionNone, "left": core.ActionLeft, "right": core.ActionRight} {
		got, err := parseMove(s)
		if err != nil || got != want {
			t.Errorf("parseMove(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := parseMove("up"); err == nil {
		t.Error("parseMove(up) accepted")
	}
}

func TestNewGameAppliesDisplay(t *testing.T) {
	cfg := config.DefaultHopConfig()
	cfg.Display.Glyphs = scene.GlyphsASCII
	cfg.Display.HUD = false

	game, err := newGame(cfg)
	if err != nil {
		t.Fatal(err)
	}
	game.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, FrameRate: 60, Seed: 1})
	screen := core.NewScreen(40, 12)
	game.Render(screen)
	if row := screen.Row(0); strings.Contains(row, "Jumps") {
		t.Errorf("HUD drawn with display.hud off: %q", row)
	}
	if strings.Contains(screen.String(), string(hop.GroundUnicode)) {
		t.Error("unicode ground drawn with display.glyphs ascii")
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("debug").String() != "debug" || parseLevel("bogus").String() != "info" {
		t.Error("parseLevel mismatch")
	}
}

func TestSimulateIgnoresFrameRate(t *testing.T) {
	const ticks = 600
	logger := log.New(io.Discard)

	var states []string
	for _, fps := range []int{2, 60, 120} {
		game, err := newGame(config.DefaultHopConfig())
		if err != nil {
			t.Fatal(err)
		}
		game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: fps, Seed: 7})
		st := simulate(game, ticks, 1, core.ActionRight, logger)

		if got := game.Context().Now; got != ticks*core.TickInterval || got != 10*time.Second {
			t.Errorf("fps %d: simulated time = %v, want 10s", fps, got)
		}
		states = append(states, fmt.Sprintf("%+v j=%v", st, game.Context().Player.Body.J))
	}
	for _, s := range states[1:] {
		if s != states[0] {
			t.Errorf("frame rate changed the run: %q vs %q", s, states[0])
		}
	}
}
