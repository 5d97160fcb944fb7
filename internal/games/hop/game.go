// Package hop implements haskellHop: a hopping player, a rotating jump
// counter, and a narrative that corrupts the display and summons an
// antagonist once the player has jumped enough.
package hop

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/haskell-hop/internal/core"
	"github.com/vovakirdan/haskell-hop/internal/registry"
	"github.com/vovakirdan/haskell-hop/internal/scene"
)

// ID is the registry identifier of the game.
const ID = "hop"

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game wires the controllers to a scene.
type Game struct {
	ctx     *Context
	scene   *scene.Scene
	runtime core.RuntimeConfig

	player     PlayerController
	score      ScoreMachine
	effects    *EffectEngine
	antagonist *AntagonistController

	glyphs string
	hud    bool
}

// New creates a game. Reset must be called before Step.
func New() *Game {
	return &Game{glyphs: scene.GlyphsUnicode, hud: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "haskellHop"
}

// SetGlyphs selects the terminal art set (scene.GlyphsUnicode or
// scene.GlyphsASCII).
func (g *Game) SetGlyphs(glyphs string) {
	if glyphs == scene.GlyphsASCII {
		g.glyphs = scene.GlyphsASCII
		return
	}
	g.glyphs = scene.GlyphsUnicode
}

// SetHUD toggles the jumps/stage status line.
func (g *Game) SetHUD(on bool) {
	g.hud = on
}

// Reset starts a fresh run. Two RNG streams are derived from the seed so
// glyph draws do not shift the antagonist's rolls.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.scene = scene.New()
	g.ctx = NewContext()
	g.effects = NewEffectEngine(rand.New(rand.NewSource(runtime.Seed)))
	g.antagonist = NewAntagonistController(rand.New(rand.NewSource(runtime.Seed + 1)))

	p := &g.ctx.Player
	p.Entity = g.scene.Spawn(scene.SpawnRequest{
		Kind:      scene.KindPlayer,
		Sprite:    PlayerSprite,
		Transform: p.Body.Transform(false),
		Tint:      core.ColorWhite,
		Alpha:     1,
	})

	d := g.ctx.Display
	g.scene.UpdateBackground(d.Background)
	g.scene.UpdateText(scene.TextUpdate{Text: d.Text, Color: d.TextColor, Alpha: d.TextAlpha, Angle: d.Angle})
}

// Step advances the simulation by one tick. now is the time since the
// run started.
func (g *Game) Step(in core.InputFrame, now time.Duration) core.StepResult {
	ctx := g.ctx
	ctx.Now = now
	ctx.Tick++

	events := g.player.Update(ctx, in, g.scene)
	if ev, ok := g.score.Update(ctx); ok {
		events = append(events, ev)
	}
	g.effects.Update(ctx, g.scene)
	events = append(events, g.antagonist.Update(ctx, g.scene, g.scene)...)

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current run summary.
func (g *Game) State() core.GameState {
	if g.ctx == nil {
		return core.GameState{Stage: StageDefault.String()}
	}
	return core.GameState{
		Score: int(g.ctx.Player.Jumps),
		Stage: g.ctx.Phase.Stage().String(),
		Ticks: g.ctx.Tick,
	}
}

// Context exposes the simulation state for inspection.
func (g *Game) Context() *Context {
	return g.ctx
}

// Scene returns the render target the controllers publish into.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}
