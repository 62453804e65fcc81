// pkg/entity/projectile.go
package entity

import (
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// Projectile is a shot fired by a rocket. Only its position changes after
// it is created.
type Projectile struct {
	BaseEntity
	OwnerID ID
	Speed   float64
	// Age is the flight time in seconds.
	Age float64
}

// NewProjectile creates a projectile travelling along rotation at speed
func NewProjectile(id, ownerID ID, position physics.Vector2D, rotation, speed float64) *Projectile {
	return &Projectile{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: position,
			Velocity: physics.FromAngle(rotation, speed),
			Rotation: rotation,
			Active:   true,
		},
		OwnerID: ownerID,
		Speed:   speed,
	}
}

// Advance moves the projectile along its fixed heading
func (p *Projectile) Advance(deltaTime float64) {
	p.Position = p.Position.Add(physics.FromAngle(p.Rotation, p.Speed*deltaTime))
	p.Age += deltaTime
}
