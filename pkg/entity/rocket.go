// pkg/entity/rocket.go
package entity

import (
	"time"

	"github.com/opd-ai/go-spacewars/pkg/input"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// RocketSpec is the fixed configuration a rocket is created with.
type RocketSpec struct {
	PlayerID        string
	Name            string
	Position        physics.Vector2D
	Rotation        float64
	MaxSpeed        float64
	CollisionRadius float64
	Cooldown        time.Duration
	Controls        input.Controls
}

// Rocket represents a player's rocket.
// MaxSpeed, CollisionRadius, Cooldown and Controls are fixed at creation.
type Rocket struct {
	BaseEntity
	PlayerID      string
	Name          string
	Speed         float64
	RotationSpeed float64
	LastShot      time.Duration

	maxSpeed        float64
	collisionRadius float64
	cooldown        time.Duration
	controls        input.Controls
}

// NewRocket creates a rocket at rest
func NewRocket(id ID, spec RocketSpec) *Rocket {
	return &Rocket{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: spec.Position,
			Rotation: spec.Rotation,
			Active:   true,
		},
		PlayerID:        spec.PlayerID,
		Name:            spec.Name,
		maxSpeed:        spec.MaxSpeed,
		collisionRadius: spec.CollisionRadius,
		cooldown:        spec.Cooldown,
		controls:        spec.Controls,
	}
}

func (r *Rocket) MaxSpeed() float64 { return r.maxSpeed }

func (r *Rocket) CollisionRadius() float64 { return r.collisionRadius }

func (r *Rocket) Cooldown() time.Duration { return r.cooldown }

func (r *Rocket) Controls() input.Controls { return r.controls }

// GetCollider returns the rocket's collision circle
func (r *Rocket) GetCollider() physics.Circle {
	return physics.Circle{Center: r.Position, Radius: r.collisionRadius}
}

// FlightState copies the rocket's kinematic state out for integration.
func (r *Rocket) FlightState() physics.FlightState {
	return physics.FlightState{
		Position:      r.Position,
		Velocity:      r.Velocity,
		Rotation:      r.Rotation,
		Speed:         r.Speed,
		RotationSpeed: r.RotationSpeed,
		MaxSpeed:      r.maxSpeed,
	}
}

// SetFlightState writes an integrated kinematic state back.
func (r *Rocket) SetFlightState(s physics.FlightState) {
	r.Position = s.Position
	r.Velocity = s.Velocity
	r.Rotation = s.Rotation
	r.Speed = s.Speed
	r.RotationSpeed = s.RotationSpeed
}

// FlightInput resolves the movement controls from a frame snapshot.
func (r *Rocket) FlightInput(s input.Snapshot) physics.FlightInput {
	return physics.FlightInput{
		Accelerate:  r.controls.Resolve(s, input.Accelerate).Pressed,
		RotateLeft:  r.controls.Resolve(s, input.RotateLeft).Pressed,
		RotateRight: r.controls.Resolve(s, input.RotateRight).Pressed,
	}
}

// CooledDown reports whether the weapon may fire at now.
func (r *Rocket) CooledDown(now time.Duration) bool {
	return now-r.LastShot >= r.cooldown
}

// Fire creates a projectile offset ahead of the rocket along its heading
// and restarts the cooldown. The caller checks CooledDown first.
func (r *Rocket) Fire(id ID, now time.Duration, speed, offset float64) *Projectile {
	spawn := r.Position.Add(physics.FromAngle(r.Rotation, offset))
	r.LastShot = now
	return NewProjectile(id, r.ID, spawn, r.Rotation, speed)
}
