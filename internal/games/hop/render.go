package hop

import (
	"fmt"

	"github.com/vovakirdan/haskell-hop/internal/core"
	"github.com/vovakirdan/haskell-hop/internal/scene"
)

// Visual characters for rendering
const (
	GroundUnicode = '═'
	GroundASCII   = '='
)

// Render draws the scene into dst: background, ground, score text,
// entities, then the status line.
func (g *Game) Render(dst *core.Screen) {
	if g.scene == nil {
		return
	}
	s := g.scene

	s.DrawBackground(dst)

	ground := GroundUnicode
	if g.glyphs == scene.GlyphsASCII {
		ground = GroundASCII
	}
	_, floorY := scene.ToCell(FloorI(), 0, dst.Width(), dst.Height())
	groundFG := core.Fade(core.ColorOlive, s.Background(), 1)
	dst.DrawHLine(0, floorY+1, dst.Width(), ground, groundFG)

	s.DrawText(dst)
	s.DrawEntities(dst, g.glyphs)

	if g.hud {
		st := g.State()
		dst.DrawText(1, 0, fmt.Sprintf("Jumps: %d", st.Score), core.ColorWhite)
		status, fg := st.Stage, core.ColorGray
		if g.ctx.Phase.Stage().Corrupted() {
			fg = core.ColorRed
		}
		dst.DrawText(dst.Width()-len(status)-1, 0, status, fg)
	}
}
