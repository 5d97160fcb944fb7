package hop

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/haskell-hop/internal/core"
	"github.com/vovakirdan/haskell-hop/internal/scene"
)

// Display effect constants.
const (
	NiceText         = "haha funny number"
	GlyphCount       = 5
	GlyphMin         = 33  // '!'
	GlyphMax         = 126 // '~'
	BackgroundDecay  = 0.99
	SlowGlitchPeriod = 500 * time.Millisecond // 2Hz scramble in Java
)

// BackgroundColor is the clear color the run starts with.
var BackgroundColor = colorful.Color{R: 0.7, G: 0.3, B: 0.3}

var (
	textColorDefault = core.ColorWhite
	textColorNice    = core.ColorCyan
	textColorGlitch  = core.ColorGreen
)

// Intent is what the score display should look like this tick.
type Intent struct {
	Text            string
	TextColor       colorful.Color
	TextAlpha       float64
	RotationRate    float64 // Degrees per tick
	BackgroundDecay float64 // Per-channel multiplier per tick; 1 means none
}

// EffectEngine turns the current phase into display intent.
type EffectEngine struct {
	rng       *rand.Rand
	slow      *core.Ticker
	javaSince time.Duration
	inJava    bool
}

// NewEffectEngine creates an engine drawing glyphs from rng.
func NewEffectEngine(rng *rand.Rand) *EffectEngine {
	return &EffectEngine{
		rng:  rng,
		slow: core.NewTicker(SlowGlitchPeriod, 0),
	}
}

// RandomGlyphs draws n printable ASCII characters uniformly, with
// replacement, from GlyphMin..GlyphMax inclusive.
func RandomGlyphs(rng *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(byte(GlyphMin + rng.Intn(GlyphMax-GlyphMin+1)))
	}
	return sb.String()
}

// Intent computes the display intent for phase. It reads no clock:
// current is the text already on screen, which Java keeps unless
// scramble is set. Glyphs are drawn from the engine's rng.
func (e *EffectEngine) Intent(p Phase, jumps uint, current string, scramble bool) Intent {
	switch ph := p.(type) {
	case Nice:
		return Intent{
			Text:            NiceText,
			TextColor:       textColorNice,
			TextAlpha:       1,
			RotationRate:    5,
			BackgroundDecay: 1,
		}
	case CorruptA:
		return Intent{
			Text:            strconv.FormatUint(uint64(jumps), 10),
			TextColor:       textColorDefault,
			TextAlpha:       1,
			RotationRate:    2,
			BackgroundDecay: BackgroundDecay,
		}
	case CorruptB:
		return Intent{
			Text:            RandomGlyphs(e.rng, GlyphCount),
			TextColor:       textColorGlitch,
			TextAlpha:       ph.FadeAlpha,
			RotationRate:    0,
			BackgroundDecay: BackgroundDecay,
		}
	case Java:
		text := current
		if scramble {
			text = RandomGlyphs(e.rng, GlyphCount)
		}
		return Intent{
			Text:            text,
			TextColor:       textColorGlitch,
			TextAlpha:       1,
			RotationRate:    0,
			BackgroundDecay: BackgroundDecay,
		}
	default:
		return Intent{
			Text:            strconv.FormatUint(uint64(jumps), 10),
			TextColor:       textColorDefault,
			TextAlpha:       1,
			RotationRate:    5,
			BackgroundDecay: 1,
		}
	}
}

// ScrambleDue advances the 2Hz glyph clock, restarted when Java is
// entered. It reports false outside Java.
func (e *EffectEngine) ScrambleDue(p Phase, now time.Duration) bool {
	ph, ok := p.(Java)
	if !ok {
		return false
	}
	if !e.inJava || e.javaSince != ph.EnteredAt {
		e.inJava = true
		e.javaSince = ph.EnteredAt
		e.slow.Reset(ph.EnteredAt)
	}
	return e.slow.Due(now)
}

// Apply writes intent into the display registers and publishes the text
// and background.
func (e *EffectEngine) Apply(ctx *Context, in Intent, sink RenderSink) {
	d := &ctx.Display
	d.Angle = core.WrapDegrees(d.Angle + in.RotationRate)
	if in.BackgroundDecay != 1 {
		d.Background = core.Scale(d.Background, in.BackgroundDecay)
	}
	d.Text = in.Text
	d.TextColor = in.TextColor
	d.TextAlpha = in.TextAlpha

	sink.UpdateText(scene.TextUpdate{
		Text:  d.Text,
		Color: d.TextColor,
		Alpha: d.TextAlpha,
		Angle: d.Angle,
	})
	sink.UpdateBackground(d.Background)
}

// Update computes and applies this tick's intent.
func (e *EffectEngine) Update(ctx *Context, sink RenderSink) Intent {
	scramble := e.ScrambleDue(ctx.Phase, ctx.Now)
	in := e.Intent(ctx.Phase, ctx.Player.Jumps, ctx.Display.Text, scramble)
	e.Apply(ctx, in, sink)
	return in
}
