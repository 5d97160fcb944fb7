// Package scene provides the render and spawn sink the simulation talks to.
// It keeps a table of live entities (transform, sprite, tint), the score
// text and the background color. Front-ends read the scene back to draw
// it; the simulation only ever writes to it.
package scene

import (
	"errors"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// World dimensions in world units. The origin is the window center,
// I grows upward and J grows to the right.
const (
	WorldWidth  = 1000.0
	WorldHeight = 500.0
)

// ErrMissingEntity is returned when an update targets an entity the
// scene no longer knows about.
var ErrMissingEntity = errors.New("scene: missing entity")

// EntityID is an opaque handle returned by Spawn.
type EntityID uint64

// Kind identifies what an entity represents.
type Kind int

const (
	KindPlayer Kind = iota
	KindAntagonist
	KindProjectile
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindAntagonist:
		return "antagonist"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Transform places an entity in the world.
type Transform struct {
	I, J  float64 // Vertical and horizontal position in world units
	Scale float64
	FlipX bool
}

// SpawnRequest describes a renderable entity to create.
type SpawnRequest struct {
	Kind      Kind
	Sprite    string // Asset reference, passed through uninterpreted
	Transform Transform
	Tint      colorful.Color
	Alpha     float64
}

// Entity is a live renderable record.
type Entity struct {
	ID        EntityID
	Kind      Kind
	Sprite    string
	Transform Transform
	Tint      colorful.Color
	Alpha     float64
}

// TextUpdate is the score display state for one tick.
type TextUpdate struct {
	Text  string
	Color colorful.Color
	Alpha float64
	Angle float64 // Degrees, counter-clockwise
}

// Scene is an in-memory render and spawn sink.
// It is not safe for concurrent use; one simulation owns one scene.
type Scene struct {
	nextID     EntityID
	entities   map[EntityID]*Entity
	order      []EntityID
	text       TextUpdate
	background colorful.Color
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		entities: make(map[EntityID]*Entity),
		text:     TextUpdate{Alpha: 1},
	}
}

// Spawn creates an entity and returns its handle.
func (s *Scene) Spawn(req SpawnRequest) EntityID {
	s.nextID++
	id := s.nextID
	s.entities[id] = &Entity{
		ID:        id,
		Kind:      req.Kind,
		Sprite:    req.Sprite,
		Transform: req.Transform,
		Tint:      req.Tint,
		Alpha:     req.Alpha,
	}
	s.order = append(s.order, id)
	return id
}

// Despawn removes an entity. Unknown handles are ignored.
func (s *Scene) Despawn(id EntityID) {
	if _, ok := s.entities[id]; !ok {
		return
	}
	delete(s.entities, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// UpdateTransform moves an entity.
func (s *Scene) UpdateTransform(id EntityID, t Transform) error {
	e, ok := s.entities[id]
	if !ok {
		return ErrMissingEntity
	}
	e.Transform = t
	return nil
}

// UpdateTint recolors an entity.
func (s *Scene) UpdateTint(id EntityID, c colorful.Color, alpha float64) error {
	e, ok := s.entities[id]
	if !ok {
		return ErrMissingEntity
	}
	e.Tint = c
	e.Alpha = alpha
	return nil
}

// UpdateText replaces the score display.
func (s *Scene) UpdateText(u TextUpdate) {
	s.text = u
}

// UpdateBackground replaces the clear color.
func (s *Scene) UpdateBackground(c colorful.Color) {
	s.background = c
}

// Entity returns a copy of the entity with the given handle.
func (s *Scene) Entity(id EntityID) (Entity, bool) {
	e, ok := s.entities[id]
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// Entities returns copies of all live entities in spawn order.
func (s *Scene) Entities() []Entity {
	result := make([]Entity, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, *s.entities[id])
	}
	return result
}

// Len returns the number of live entities.
func (s *Scene) Len() int {
	return len(s.order)
}

// Text returns the current score display.
func (s *Scene) Text() TextUpdate {
	return s.text
}

// Background returns the current clear color.
func (s *Scene) Background() colorful.Color {
	return s.background
}
