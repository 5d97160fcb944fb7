// Package window runs the game in an Ebiten window. Unlike the
// terminal, Ebiten reports key state directly, so held keys need no
// emulation.
package window

import (
	"errors"
	"fmt"
	_ "image/png" // Texture decoding
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/haskell-hop/internal/core"
	"github.com/vovakirdan/haskell-hop/internal/registry"
	"github.com/vovakirdan/haskell-hop/internal/scene"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

const (
	textScale   = 6.0   // Score text magnification
	spriteScale = 400.0 // Pixels per unit of Transform.Scale
	artScale    = 2.0   // Fallback sprite art magnification
)

// SceneGame is a game whose frame the window can draw entity by entity.
type SceneGame interface {
	registry.Game
	Scene() *scene.Scene
}

// Options configures the window.
type Options struct {
	Runtime core.RuntimeConfig
	Width   int         // Window size in pixels
	Height  int         // Window size in pixels
	Logger  *log.Logger // Optional; nil discards
}

// bindings maps actions to the keys that hold them.
var bindings = map[core.Action][]ebiten.Key{
	core.ActionJump:  {ebiten.KeyW, ebiten.KeySpace, ebiten.KeyArrowUp},
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionQuit:  {ebiten.KeyQ, ebiten.KeyEscape},
}

// pollInput builds the held-key frame from a key state query.
func pollInput(pressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range bindings {
		for _, k := range keys {
			if pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}

// toScreen maps a world position to logical pixels (origin top-left).
func toScreen(i, j float64) (x, y float64) {
	return j + scene.WorldWidth/2, scene.WorldHeight/2 - i
}

// Game adapts a SceneGame to ebiten.Game. Ebiten calls Update at
// core.SimulationRate and redraws at the display refresh rate, so
// RuntimeConfig.FrameRate is not used here.
type Game struct {
	game    SceneGame
	logger  *log.Logger
	ticks   int
	textImg *ebiten.Image
	sprites *spriteCache
}

// NewGame starts a fresh run of game.
func NewGame(game SceneGame, opts Options) *Game {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	logger.Info("run started", "game", game.ID(), "seed", cfg.Seed, "front-end", "window")

	return &Game{
		game:    game,
		logger:  logger,
		sprites: newSpriteCache(logger),
	}
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	in := pollInput(ebiten.IsKeyPressed)
	if in.Held(core.ActionQuit) {
		return ebiten.Termination
	}

	g.step(in)
	return nil
}

// step runs one simulation tick. Time comes from the tick count.
func (g *Game) step(in core.InputFrame) {
	g.ticks++
	result := g.game.Step(in, time.Duration(g.ticks)*core.TickInterval)
	for _, ev := range result.Events {
		if ev.Kind == core.EventStageChanged {
			g.logger.Info(ev.Message, ev.Keyvals...)
			continue
		}
		g.logger.Debug(ev.Message, append([]any{"kind", ev.Kind.String()}, ev.Keyvals...)...)
	}
}

// Draw renders the scene: background, ground, score text, entities.
func (g *Game) Draw(screen *ebiten.Image) {
	sc := g.game.Scene()
	bg := sc.Background()
	screen.Fill(bg)

	_, floorY := toScreen(-scene.WorldHeight/2+scene.WorldHeight*0.1, 0)
	vector.DrawFilledRect(screen, 0, float32(floorY), scene.WorldWidth, 3, core.Fade(core.ColorOlive, bg, 1), false)

	g.drawText(screen, sc.Text())
	for _, e := range sc.Entities() {
		g.drawEntity(screen, e)
	}

	st := g.game.State()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Jumps: %d  %s", st.Score, st.Stage), 8, 4)
}

// drawText draws the score text centered on the screen, rotated
// counter-clockwise by its angle.
func (g *Game) drawText(screen *ebiten.Image, t scene.TextUpdate) {
	if t.Text == "" || t.Alpha <= 0 {
		return
	}
	w := glyphW * len([]rune(t.Text))
	if g.textImg == nil || g.textImg.Bounds().Dx() != w {
		g.textImg = ebiten.NewImage(w, glyphH)
	}
	g.textImg.Clear()
	ebitenutil.DebugPrint(g.textImg, t.Text)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -glyphH/2)
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Rotate(-t.Angle * math.Pi / 180)
	op.GeoM.Translate(scene.WorldWidth/2, scene.WorldHeight/2)
	op.ColorScale.ScaleWithColor(t.Color)
	op.ColorScale.ScaleAlpha(float32(t.Alpha))
	screen.DrawImage(g.textImg, op)
}

// drawEntity draws the entity's texture, or its art if the texture is
// missing, anchored bottom-center at its position.
func (g *Game) drawEntity(screen *ebiten.Image, e scene.Entity) {
	img := g.sprites.Get(e.Sprite)
	x, y := toScreen(e.Transform.I, e.Transform.J)

	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	scale := artScale
	if g.sprites.Textured(e.Sprite) {
		scale = e.Transform.Scale * spriteScale / math.Max(w, h)
	}
	op.GeoM.Translate(-w/2, -h)
	if e.Transform.FlipX {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(e.Tint)
	op.ColorScale.ScaleAlpha(float32(e.Alpha))
	screen.DrawImage(img, op)
}

// Layout fixes the logical screen to the world size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(scene.WorldWidth), int(scene.WorldHeight)
}

// State returns the run summary.
func (g *Game) State() core.GameState {
	return g.game.State()
}

// Run opens the window and plays until it is closed or Q/Esc is pressed.
// It returns the final run summary.
func Run(game SceneGame, opts Options) (core.GameState, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = int(scene.WorldWidth), int(scene.WorldHeight)
	}
	g := NewGame(game, opts)

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(core.SimulationRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return g.State(), fmt.Errorf("window: %w", err)
	}
	return g.State(), nil
}

// spriteCache loads textures by reference, falling back to rendered art.
type spriteCache struct {
	logger   *log.Logger
	images   map[string]*ebiten.Image
	textured map[string]bool
}

func newSpriteCache(logger *log.Logger) *spriteCache {
	return &spriteCache{
		logger:   logger,
		images:   make(map[string]*ebiten.Image),
		textured: make(map[string]bool),
	}
}

// Get returns the image for sprite, loading it on first use.
func (c *spriteCache) Get(sprite string) *ebiten.Image {
	if img, ok := c.images[sprite]; ok {
		return img
	}
	img, _, err := ebitenutil.NewImageFromFile(sprite)
	if err == nil {
		c.textured[sprite] = true
	} else {
		c.logger.Debug("texture unavailable, drawing art", "sprite", sprite, "error", err)
		img = artImage(scene.Art(sprite, scene.GlyphsASCII, false))
	}
	c.images[sprite] = img
	return img
}

// Textured reports whether sprite was loaded from a file.
func (c *spriteCache) Textured(sprite string) bool {
	return c.textured[sprite]
}

// artImage renders sprite art rows with the debug font.
func artImage(rows []string) *ebiten.Image {
	w := 1
	for _, r := range rows {
		w = max(w, len([]rune(r)))
	}
	img := ebiten.NewImage(w*glyphW, len(rows)*glyphH)
	ebitenutil.DebugPrint(img, strings.Join(rows, "\n"))
	return img
}
