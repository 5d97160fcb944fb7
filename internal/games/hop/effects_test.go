package hop

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/haskell-hop/internal/core"
	"github.com/vovakirdan/haskell-hop/internal/scene"
)

func TestRandomGlyphsRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[byte]bool)
	for n := 0; n < 2000; n++ {
		s := RandomGlyphs(rng, GlyphCount)
		if len(s) != GlyphCount {
			t.Fatalf("len(%q) = %d", s, len(s))
		}
		for i := 0; i < len(s); i++ {
			if s[i] < GlyphMin || s[i] > GlyphMax {
				t.Fatalf("glyph %q out of range", s[i])
			}
			seen[s[i]] = true
		}
	}
	if !seen[GlyphMin] || !seen[GlyphMax] {
		t.Error("range endpoints never drawn")
	}
}

func TestIntentPerStage(t *testing.T) {
	e := NewEffectEngine(rand.New(rand.NewSource(1)))
	tests := []struct {
		name  string
		phase Phase
		text  string
		color string
		rate  float64
		decay float64
	}{
		{"default", Default{}, "12", core.ColorWhite.Hex(), 5, 1},
		{"nice", Nice{}, NiceText, core.ColorCyan.Hex(), 5, 1},
		{"corrupt a", CorruptA{}, "12", core.ColorWhite.Hex(), 2, BackgroundDecay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := e.Intent(tt.phase, 12, "", false)
			if in.Text != tt.text || in.TextColor.Hex() != tt.color {
				t.Errorf("text %q color %s", in.Text, in.TextColor.Hex())
			}
			if in.RotationRate != tt.rate || in.BackgroundDecay != tt.decay || in.TextAlpha != 1 {
				t.Errorf("intent = %+v", in)
			}
		})
	}

	in := e.Intent(CorruptB{FadeAlpha: 0.25}, 12, "", false)
	if len(in.Text) != GlyphCount || in.TextAlpha != 0.25 || in.RotationRate != 0 {
		t.Errorf("corrupt b intent = %+v", in)
	}
	if in.TextColor.Hex() != core.ColorGreen.Hex() {
		t.Errorf("corrupt b color = %s", in.TextColor.Hex())
	}
}

func TestApplyRotatesAndDecays(t *testing.T) {
	ctx := NewContext()
	sc := scene.New()
	e := NewEffectEngine(rand.New(rand.NewSource(1)))

	ctx.Display.Angle = 358
	e.Apply(ctx, Intent{Text: "x", TextAlpha: 1, RotationRate: 5, BackgroundDecay: 1}, sc)
	if ctx.Display.Angle != 3 {
		t.Errorf("angle = %v, want 3", ctx.Display.Angle)
	}
	if sc.Text().Text != "x" || sc.Text().Angle != 3 {
		t.Errorf("scene text = %+v", sc.Text())
	}

	e.Apply(ctx, Intent{Text: "x", TextAlpha: 1, BackgroundDecay: 0.5}, sc)
	if got := sc.Background(); got.R != BackgroundColor.R*0.5 || got.G != BackgroundColor.G*0.5 {
		t.Errorf("background = %+v", got)
	}
}

func TestJavaScrambleCadence(t *testing.T) {
	e := NewEffectEngine(rand.New(rand.NewSource(3)))
	entered := 10 * time.Second
	phase := Java{EnteredAt: entered}
	tick := time.Second / 60

	text := "start"
	changes := 0
	var last time.Duration
	for now := entered; now < entered+2*time.Second; now += tick {
		in := e.Intent(phase, 0, text, e.ScrambleDue(phase, now))
		if in.Text != text {
			changes++
			if changes > 1 && now-last < SlowGlitchPeriod-tick {
				t.Fatalf("scramble %v after the previous one", now-last)
			}
			last = now
			text = in.Text
		}
		if in.TextAlpha != 1 || in.BackgroundDecay != BackgroundDecay {
			t.Fatalf("java intent = %+v", in)
		}
	}
	if changes != 3 {
		t.Errorf("scrambles in 2s = %d, want 3", changes)
	}
}

func TestIntentLeavesGlyphClock(t *testing.T) {
	e := NewEffectEngine(rand.New(rand.NewSource(5)))
	phase := Java{EnteredAt: time.Second}

	// Repeated Intent calls without a due scramble keep the text.
	for n := 0; n < 3; n++ {
		if in := e.Intent(phase, 0, "kept", false); in.Text != "kept" {
			t.Fatalf("call %d: text = %q", n, in.Text)
		}
	}

	if e.ScrambleDue(CorruptB{FadeAlpha: 1}, time.Hour) {
		t.Error("scramble due outside Java")
	}
	if e.ScrambleDue(phase, time.Second+SlowGlitchPeriod-time.Millisecond) {
		t.Error("scramble due before one period")
	}
	if !e.ScrambleDue(phase, time.Second+SlowGlitchPeriod) {
		t.Error("scramble not due after one period")
	}
	if e.ScrambleDue(phase, time.Second+SlowGlitchPeriod) {
		t.Error("scramble fired twice in one period")
	}
	if in := e.Intent(phase, 0, "kept", true); in.Text == "kept" || len(in.Text) != GlyphCount {
		t.Errorf("scrambled text = %q", in.Text)
	}
}
