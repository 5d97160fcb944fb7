package core

import colorful "github.com/lucasb-eyer/go-colorful"

// Named colors used by the simulation and the renderers.
// Channels are linear in [0, 1] as in go-colorful.
var (
	ColorBlack = colorful.Color{R: 0, G: 0, B: 0}
	ColorWhite = colorful.Color{R: 1, G: 1, B: 1}
	ColorCyan  = colorful.Color{R: 0, G: 1, B: 1}
	ColorGreen = colorful.Color{R: 0, G: 1, B: 0}
	ColorRed   = colorful.Color{R: 1, G: 0, B: 0}
	ColorGray  = colorful.Color{R: 0.55, G: 0.55, B: 0.55}
	ColorOlive = colorful.Color{R: 0.6, G: 0.45, B: 0.2}
)

// Fade blends fg over bg with the given opacity.
// Terminals have no alpha channel, so translucent text is approximated
// by mixing it into the cell background.
func Fade(fg, bg colorful.Color, alpha float64) colorful.Color {
	alpha = ClampF(alpha, 0, 1)
	return bg.BlendRgb(fg, alpha)
}

// Scale multiplies every channel of c by f.
func Scale(c colorful.Color, f float64) colorful.Color {
	return colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}
}
