package window

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/haskell-hop/internal/core"
	"github.com/vovakirdan/haskell-hop/internal/games/hop"
)

func TestPollInput(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		held    []core.Action
	}{
		{"none", nil, nil},
		{"space jumps", []ebiten.Key{ebiten.KeySpace}, []core.Action{core.ActionJump}},
		{"arrows", []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowLeft}, []core.Action{core.ActionJump, core.ActionLeft}},
		{"both directions", []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, []core.Action{core.ActionLeft, core.ActionRight}},
		{"escape quits", []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			down := make(map[ebiten.Key]bool)
			for _, k := range tt.pressed {
				down[k] = true
			}
			frame := pollInput(func(k ebiten.Key) bool { return down[k] })

			want := make(map[core.Action]bool)
			for _, a := range tt.held {
				want[a] = true
			}
			for _, a := range []core.Action{core.ActionJump, core.ActionLeft, core.ActionRight, core.ActionQuit} {
				if frame.Held(a) != want[a] {
					t.Errorf("%v held = %v, want %v", a, frame.Held(a), want[a])
				}
			}
		})
	}
}

func TestToScreen(t *testing.T) {
	tests := []struct {
		i, j, x, y float64
	}{
		{0, 0, 500, 250},
		{250, -500, 0, 0},
		{-250, 500, 1000, 500},
		{-200, -450, 50, 450},
	}
	for _, tt := range tests {
		x, y := toScreen(tt.i, tt.j)
		if x != tt.x || y != tt.y {
			t.Errorf("toScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.i, tt.j, x, y, tt.x, tt.y)
		}
	}
}

func TestStepUsesFixedTickInterval(t *testing.T) {
	game := hop.New()
	g := NewGame(game, Options{Runtime: core.RuntimeConfig{FrameRate: 2, Seed: 1}})

	for n := 0; n < core.SimulationRate; n++ {
		g.step(core.NewInputFrame())
	}
	if got := game.Context().Now; got != time.Second {
		t.Errorf("simulated time after %d steps = %v, want 1s", core.SimulationRate, got)
	}
	if st := g.State(); st.Ticks != core.SimulationRate {
		t.Errorf("ticks = %d", st.Ticks)
	}
}
