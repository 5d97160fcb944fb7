package hop

import (
	"github.com/vovakirdan/haskell-hop/internal/core"
	"github.com/vovakirdan/haskell-hop/internal/scene"
)

// Player physics constants, per tick.
const (
	PlayerScale  = 0.15
	Gravity      = 9.81 / 10
	JumpImpulse  = 10.0
	Acceleration = 0.4
	Friction     = 0.7
	PlayerSprite = "textures/haskell.png"
)

// FloorI returns the floor height: a tenth of the world height above
// the bottom edge.
func FloorI() float64 {
	return -(scene.WorldHeight / 2) + (scene.WorldHeight * 0.1)
}

// Facing is the direction the player sprite looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns a human-readable name for the facing.
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Player is the controllable character.
type Player struct {
	Body   Body
	Entity scene.EntityID
	Facing Facing
	Jumps  uint // Jump impulses so far, never decremented
}

// PlayerController integrates the player body from held input.
type PlayerController struct{}

// Update applies one tick of input and physics to ctx.Player and
// publishes its transform.
func (pc *PlayerController) Update(ctx *Context, in core.InputFrame, sink RenderSink) []core.Event {
	var events []core.Event
	p := &ctx.Player
	b := &p.Body

	// VelI is exactly zero only on the tick after a landing clamp, so a
	// held jump fires once per landing.
	if in.Held(core.ActionJump) && b.VelI == 0 {
		p.Jumps++
		b.VelI = JumpImpulse
		events = append(events, core.Event{
			Kind:    core.EventJump,
			Message: "jump",
			Keyvals: []any{"jumps", p.Jumps},
		})
	}

	if in.Held(core.ActionRight) {
		b.VelJ += Acceleration
		p.Facing = FacingRight
	}
	if in.Held(core.ActionLeft) {
		b.VelJ -= Acceleration
		p.Facing = FacingLeft
	}

	floor := FloorI()

	b.J += b.VelJ

	if b.I+b.VelI < floor {
		b.I = floor
		b.VelI = 0
		b.VelJ *= Friction
	} else {
		b.I += b.VelI
		b.VelI -= Gravity
	}

	// A missing entity is skipped for this tick.
	_ = sink.UpdateTransform(p.Entity, b.Transform(p.Facing == FacingLeft))

	return events
}
