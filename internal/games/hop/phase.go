package hop

import (
	"time"

	"github.com/vovakirdan/haskell-hop/internal/core"
)

// Narrative thresholds.
const (
	NiceJumps     = 69
	CorruptJumps  = 80
	NiceDuration  = 1000 * time.Millisecond
	CorruptADwell = 2000 * time.Millisecond
	OriginSlack   = 10.0 // Degrees either side of the starting orientation
	FadeFactor    = 0.98
	FadeThreshold = 0.001
)

// Stage names a Phase variant.
type Stage int

const (
	StageDefault Stage = iota
	StageNice
	StageCorruptA
	StageCorruptB
	StageJava
)

// String returns the stage name as shown in logs and the scoreboard.
func (s Stage) String() string {
	switch s {
	case StageDefault:
		return "DEFAULT"
	case StageNice:
		return "NICE"
	case StageCorruptA:
		return "CORRUPT_A"
	case StageCorruptB:
		return "CORRUPT_B"
	case StageJava:
		return "JAVA"
	default:
		return "UNKNOWN"
	}
}

// Corrupted reports whether the stage is past the point of no return.
func (s Stage) Corrupted() bool {
	return s >= StageCorruptA
}

// Phase is the narrative state. Each variant carries only what its
// stage needs.
type Phase interface {
	Stage() Stage
}

// Default shows the jump count. NiceShown latches after the Nice
// celebration so a count parked at 69 does not celebrate again.
type Default struct {
	NiceShown bool
}

// Nice shows the celebratory text for NiceDuration.
type Nice struct {
	EnteredAt time.Duration
}

// CorruptA darkens the background and slows the rotation.
type CorruptA struct {
	EnteredAt time.Duration
}

// CorruptB scrambles the text while it fades out.
type CorruptB struct {
	EnteredAt time.Duration
	FadeAlpha float64
}

// Java is the final stage: the antagonist throws projectiles.
type Java struct {
	EnteredAt time.Duration
}

func (Default) Stage() Stage  { return StageDefault }
func (Nice) Stage() Stage     { return StageNice }
func (CorruptA) Stage() Stage { return StageCorruptA }
func (CorruptB) Stage() Stage { return StageCorruptB }
func (Java) Stage() Stage     { return StageJava }

// Observation is what the transition rules look at.
type Observation struct {
	Jumps uint
	Now   time.Duration
	Angle float64 // Score display rotation in degrees
}

// NearOrigin reports whether angle is within OriginSlack of 0 mod 360.
func NearOrigin(angle float64) bool {
	d := core.WrapDegrees(angle)
	return d <= OriginSlack || d >= 360-OriginSlack
}

// Decide applies the transition rules in priority order. Each rule sees
// the result of the ones before it. Combinations no rule covers leave
// the phase unchanged.
func Decide(p Phase, obs Observation) Phase {
	// 1. Funny number.
	if d, ok := p.(Default); ok && !d.NiceShown && obs.Jumps == NiceJumps {
		p = Nice{EnteredAt: obs.Now}
	}

	// 2. Celebration over.
	if n, ok := p.(Nice); ok && obs.Now-n.EnteredAt >= NiceDuration {
		p = Default{NiceShown: true}
	}

	// 3. Corruption starts.
	if _, ok := p.(Default); ok && obs.Jumps >= CorruptJumps {
		p = CorruptA{EnteredAt: obs.Now}
	}

	// 4. Full revolution after the dwell.
	if a, ok := p.(CorruptA); ok && obs.Now-a.EnteredAt >= CorruptADwell && NearOrigin(obs.Angle) {
		p = CorruptB{EnteredAt: obs.Now, FadeAlpha: 1}
	}

	// 5. Text has faded out.
	if b, ok := p.(CorruptB); ok && b.FadeAlpha <= FadeThreshold {
		p = Java{EnteredAt: obs.Now}
	}

	return p
}

// evolve advances per-tick phase state that is not a transition.
func evolve(p Phase) Phase {
	if b, ok := p.(CorruptB); ok {
		b.FadeAlpha *= FadeFactor
		return b
	}
	return p
}

// ScoreMachine owns ctx.Phase.
type ScoreMachine struct{}

// Update evolves the phase by one tick and applies the transition rules.
// It returns a stage event when the stage changed.
func (m *ScoreMachine) Update(ctx *Context) (core.Event, bool) {
	before := ctx.Phase.Stage()

	next := Decide(evolve(ctx.Phase), Observation{
		Jumps: ctx.Player.Jumps,
		Now:   ctx.Now,
		Angle: ctx.Display.Angle,
	})
	ctx.Phase = next

	after := next.Stage()
	if after == before {
		return core.Event{}, false
	}
	return core.Event{
		Kind:    core.EventStageChanged,
		Message: "stage changed",
		Keyvals: []any{"from", before.String(), "to", after.String(), "jumps", ctx.Player.Jumps, "at", ctx.Now},
	}, true
}
