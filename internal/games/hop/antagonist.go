package hop

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/haskell-hop/internal/core"
	"github.com/vovakirdan/haskell-hop/internal/scene"
)

// Antagonist constants.
const (
	AntagonistSprite = "textures/java.png"
	ProjectileSprite = "textures/coffee.png"
	AntagonistScale  = 0.2
	ProjectileScale  = 0.05
	AntagonistSpeed  = 5.0
	ProjectileVelI   = -3.0
	AlphaStep        = 0.005
	RollInterval     = 2000 * time.Millisecond
)

// AntagonistI is the fixed height the antagonist patrols at.
func AntagonistI() float64 {
	return scene.WorldHeight/2 - scene.WorldHeight*0.2
}

// AntagonistBound is the |j| at which the antagonist turns around.
func AntagonistBound() float64 {
	return scene.WorldWidth/2 - 100
}

// Antagonist appears once the score display corrupts.
type Antagonist struct {
	Body        Body
	Entity      scene.EntityID
	Alpha       float64
	LastRoll    time.Duration
	Projectiles []Projectile // Spawn order
}

// Projectile falls from the antagonist.
type Projectile struct {
	Body   Body
	Entity scene.EntityID
}

// OutOfBounds reports whether the projectile has left the world.
func (p Projectile) OutOfBounds() bool {
	return p.Body.I < -scene.WorldHeight/2 ||
		p.Body.J > scene.WorldWidth/2 || p.Body.J < -scene.WorldWidth/2
}

// AntagonistController spawns, paces and moves the antagonist and its
// projectiles.
type AntagonistController struct {
	rng *rand.Rand
}

// NewAntagonistController creates a controller rolling directions from rng.
func NewAntagonistController(rng *rand.Rand) *AntagonistController {
	return &AntagonistController{rng: rng}
}

func (ac *AntagonistController) rollDirection() float64 {
	if ac.rng.Intn(2) == 0 {
		return -AntagonistSpeed
	}
	return AntagonistSpeed
}

// Update runs one antagonist tick.
func (ac *AntagonistController) Update(ctx *Context, spawner SpawnSink, sink RenderSink) []core.Event {
	stage := ctx.Phase.Stage()
	if stage != StageCorruptB && stage != StageJava {
		return nil
	}

	var events []core.Event

	if ctx.Antagonist == nil {
		body := NewBody(AntagonistI(), 0, 0, 0, AntagonistScale)
		id := spawner.Spawn(scene.SpawnRequest{
			Kind:      scene.KindAntagonist,
			Sprite:    AntagonistSprite,
			Transform: body.Transform(false),
			Tint:      core.ColorWhite,
			Alpha:     0,
		})
		ctx.Antagonist = &Antagonist{Body: body, Entity: id, LastRoll: ctx.Now}
		events = append(events, core.Event{
			Kind:    core.EventSpawned,
			Message: "antagonist spawned",
			Keyvals: []any{"entity", id, "kind", scene.KindAntagonist.String(), "at", ctx.Now},
		})
	}

	a := ctx.Antagonist
	a.Alpha = core.ClampF(a.Alpha+AlphaStep, 0, 1)

	if ctx.Now-a.LastRoll >= RollInterval {
		a.Body.VelJ = ac.rollDirection()
		a.LastRoll = ctx.Now
		if stage == StageJava {
			body := NewBody(a.Body.I, a.Body.J, ProjectileVelI, 0, ProjectileScale)
			id := spawner.Spawn(scene.SpawnRequest{
				Kind:      scene.KindProjectile,
				Sprite:    ProjectileSprite,
				Transform: body.Transform(false),
				Tint:      core.ColorWhite,
				Alpha:     1,
			})
			a.Projectiles = append(a.Projectiles, Projectile{Body: body, Entity: id})
			events = append(events, core.Event{
				Kind:    core.EventSpawned,
				Message: "projectile spawned",
				Keyvals: []any{"entity", id, "kind", scene.KindProjectile.String(), "j", a.Body.J},
			})
		}
	}

	bound := AntagonistBound()
	if (a.Body.J >= bound && a.Body.VelJ > 0) || (a.Body.J <= -bound && a.Body.VelJ < 0) {
		a.Body.VelJ = -a.Body.VelJ
	}
	a.Body.J += a.Body.VelJ

	_ = sink.UpdateTransform(a.Entity, a.Body.Transform(a.Body.VelJ < 0))
	_ = sink.UpdateTint(a.Entity, core.ColorWhite, a.Alpha)

	kept := a.Projectiles[:0]
	for _, p := range a.Projectiles {
		p.Body.Advance()
		if p.OutOfBounds() {
			spawner.Despawn(p.Entity)
			events = append(events, core.Event{
				Kind:    core.EventDespawned,
				Message: "projectile despawned",
				Keyvals: []any{"entity", p.Entity},
			})
			continue
		}
		_ = sink.UpdateTransform(p.Entity, p.Body.Transform(false))
		kept = append(kept, p)
	}
	a.Projectiles = kept

	return events
}
