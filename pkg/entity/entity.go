// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for all game objects
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector2D
	GetCollider() physics.Circle
	Render(r Renderer)
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Rotation float64
	Active   bool
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// GetCollider returns a point collider at the entity's position
func (e *BaseEntity) GetCollider() physics.Circle {
	return physics.Circle{Center: e.Position}
}

// Render does nothing; concrete entities dispatch to the renderer.
func (e *BaseEntity) Render(r Renderer) {}

func (r *Rocket) Render(rd Renderer) {
	rd.RenderRocket(r)
}

func (s *Sun) Render(r Renderer) {
	r.RenderSun(s)
}

func (p *Projectile) Render(r Renderer) {
	r.RenderProjectile(p)
}

// IDGenerator hands out increasing entity IDs starting at 1.
// The zero value is ready to use.
type IDGenerator struct {
	last ID
}

// Next returns a fresh ID.
func (g *IDGenerator) Next() ID {
	g.last++
	return g.last
}
