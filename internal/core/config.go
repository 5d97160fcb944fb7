package core

import "time"

// SimulationRate is the fixed number of simulation ticks per second.
// Every per-tick game constant assumes it.
const SimulationRate = 60

// TickInterval is the simulated time one tick covers.
const TickInterval = time.Second / SimulationRate

// RuntimeConfig contains configuration passed to the game at initialization.
// Front-ends use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters (terminal) or pixels (window)
	ScreenH   int   // Screen height in characters (terminal) or pixels (window)
	FrameRate int   // Redraws per second; the simulation always runs at SimulationRate
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: SimulationRate,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int    // Jumps performed so far
	Stage string // Name of the current narrative stage
	Ticks int    // Simulation ticks since reset
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventJump EventKind = iota
	EventStageChanged
	EventSpawned
	EventDespawned
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventStageChanged:
		return "stage"
	case EventSpawned:
		return "spawn"
	case EventDespawned:
		return "despawn"
	default:
		return "unknown"
	}
}

// Event is reported by Game.Step. Keyvals follow the alternating
// key/value convention of structured loggers.
type Event struct {
	Kind    EventKind
	Message string
	Keyvals []any
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
