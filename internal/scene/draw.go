package scene

import (
	"math"

	"github.com/vovakirdan/haskell-hop/internal/core"
)

// Glyph sets for sprite art.
const (
	GlyphsUnicode = "unicode"
	GlyphsASCII   = "ascii"
)

// Sprite art, bottom row last. Art faces right; FlipX mirrors it.
var unicodeArt = map[string][]string{
	"textures/haskell.png": {">λ=", "/ \\"},
	"textures/java.png":    {"╔═╗)", "║J║ ", "╚═╝ "},
	"textures/coffee.png":  {"●"},
}

var asciiArt = map[string][]string{
	"textures/haskell.png": {">\\=", "/ \\"},
	"textures/java.png":    {"+-+)", "|J| ", "+-+ "},
	"textures/coffee.png":  {"o"},
}

var mirrored = map[rune]rune{
	'>': '<', '<': '>',
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
}

// ToCell maps a world position to a screen cell.
func ToCell(i, j float64, cols, rows int) (x, y int) {
	x = int(math.Floor((j + WorldWidth/2) / WorldWidth * float64(cols)))
	y = int(math.Floor((WorldHeight/2 - i) / WorldHeight * float64(rows)))
	return x, y
}

// Art returns the rows drawn for a sprite reference.
func Art(sprite, glyphs string, flipX bool) []string {
	table := unicodeArt
	if glyphs == GlyphsASCII {
		table = asciiArt
	}
	rows, ok := table[sprite]
	if !ok {
		rows = []string{"?"}
	}
	if !flipX {
		return rows
	}
	out := make([]string, len(rows))
	for n, row := range rows {
		runes := []rune(row)
		for a, b := 0, len(runes)-1; a < b; a, b = a+1, b-1 {
			runes[a], runes[b] = runes[b], runes[a]
		}
		for k, r := range runes {
			if m, ok := mirrored[r]; ok {
				runes[k] = m
			}
		}
		out[n] = string(runes)
	}
	return out
}

// Draw clears dst with the scene background, then draws the score text
// and every entity.
func (s *Scene) Draw(dst *core.Screen, glyphs string) {
	s.DrawBackground(dst)
	s.DrawText(dst)
	s.DrawEntities(dst, glyphs)
}

// DrawBackground clears dst with the scene background.
func (s *Scene) DrawBackground(dst *core.Screen) {
	dst.SetBackground(s.background)
	dst.Clear()
}

// DrawText draws the score text rotated around the screen center.
// Rows are about twice as tall as columns, so the vertical component
// of the baseline is halved.
func (s *Scene) DrawText(dst *core.Screen) {
	runes := []rune(s.text.Text)
	if len(runes) == 0 {
		return
	}
	fg := core.Fade(s.text.Color, s.background, s.text.Alpha)
	rad := s.text.Angle * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	cx, cy := dst.Width()/2, dst.Height()/2
	mid := float64(len(runes)-1) / 2

	for k, r := range runes {
		d := float64(k) - mid
		x := cx + roundHalfUp(d*cos)
		y := cy - roundHalfUp(d*sin*0.5)
		dst.Set(x, y, r, fg)
	}
}

// DrawEntities draws every entity's sprite art, anchored bottom-center
// at its position.
func (s *Scene) DrawEntities(dst *core.Screen, glyphs string) {
	for _, id := range s.order {
		e := s.entities[id]
		rows := Art(e.Sprite, glyphs, e.Transform.FlipX)
		fg := core.Fade(e.Tint, s.background, e.Alpha)
		x, y := ToCell(e.Transform.I, e.Transform.J, dst.Width(), dst.Height())

		for n, row := range rows {
			ry := y - (len(rows) - 1 - n)
			rx := x - len([]rune(row))/2
			k := 0
			for _, r := range row {
				if r != ' ' {
					dst.Set(rx+k, ry, r, fg)
				}
				k++
			}
		}
	}
}

// roundHalfUp rounds to the nearest integer, halves toward +inf, so that
// even-length text centered on a cell stays contiguous.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
