package entity

import (
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// Sun is the fixed gravity source at the centre of the playfield.
type Sun struct {
	BaseEntity
	Radius float64
}

// NewSun creates a sun
func NewSun(id ID, position physics.Vector2D, radius float64) *Sun {
	return &Sun{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: position,
			Active:   true,
		},
		Radius: radius,
	}
}

// GetCollider returns the sun's body
func (s *Sun) GetCollider() physics.Circle {
	return physics.Circle{Center: s.Position, Radius: s.Radius}
}
