package hop

import "github.com/vovakirdan/haskell-hop/internal/scene"

// Body is the position/velocity/scale record shared by the player,
// the antagonist and each projectile. Controllers own the behavior.
type Body struct {
	I, J       float64 // Vertical (up positive) and horizontal position
	VelI, VelJ float64 // Velocity in world units per tick
	Scale      float64 // Uniform scale, always > 0
}

// NewBody creates a body at rest-or-moving with the given scale.
// It panics on a non-positive scale; every caller passes a constant.
func NewBody(i, j, velI, velJ, scale float64) Body {
	if scale <= 0 {
		panic("hop: body scale must be positive")
	}
	return Body{I: i, J: j, VelI: velI, VelJ: velJ, Scale: scale}
}

// Advance moves the body by one tick of its velocity (Euler, no sub-steps).
func (b *Body) Advance() {
	b.I += b.VelI
	b.J += b.VelJ
}

// Transform converts the body into a render transform.
func (b Body) Transform(flipX bool) scene.Transform {
	return scene.Transform{I: b.I, J: b.J, Scale: b.Scale, FlipX: flipX}
}
