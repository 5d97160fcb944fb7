package hop

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/haskell-hop/internal/scene"
)

// RenderSink receives per-tick display updates. The simulation never
// reads back from it.
type RenderSink interface {
	UpdateTransform(id scene.EntityID, t scene.Transform) error
	UpdateTint(id scene.EntityID, c colorful.Color, alpha float64) error
	UpdateText(u scene.TextUpdate)
	UpdateBackground(c colorful.Color)
}

// SpawnSink creates and destroys renderable entities.
type SpawnSink interface {
	Spawn(req scene.SpawnRequest) scene.EntityID
	Despawn(id scene.EntityID)
}

// Display holds the score display registers the effect engine mutates.
type Display struct {
	Angle      float64 // Degrees in [0, 360)
	Text       string
	TextColor  colorful.Color
	TextAlpha  float64
	Background colorful.Color
}

// Context is all mutable simulation state. The Game owns it and hands it
// to each controller in turn; only one controller touches it at a time.
type Context struct {
	Now        time.Duration // Time since simulation start
	Tick       int
	Player     Player
	Phase      Phase
	Display    Display
	Antagonist *Antagonist // nil until the first CorruptB tick
}

// NewContext creates the initial state with the player resting on the floor.
func NewContext() *Context {
	return &Context{
		Player: Player{
			Body:   NewBody(FloorI(), -(scene.WorldWidth/2)+(scene.WorldHeight*0.1), 0, 0, PlayerScale),
			Facing: FacingRight,
		},
		Phase: Default{},
		Display: Display{
			Text:       "0",
			TextColor:  textColorDefault,
			TextAlpha:  1,
			Background: BackgroundColor,
		},
	}
}
