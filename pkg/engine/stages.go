package engine

import (
	"math"

	"github.com/opd-ai/go-spacewars/pkg/input"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// UpdateFlight applies thrust and rotation input to every rocket and moves it
// along its new heading.
func UpdateFlight(w *World, deltaTime float64, snap input.Snapshot, params physics.FlightParams) {
	for _, id := range w.RocketIDs() {
		rocket := w.Rockets[id]
		state := rocket.FlightState()
		physics.Fly(&state, params, deltaTime, rocket.FlightInput(snap))
		rocket.SetFlightState(state)
	}
}

// ApplyGravity pulls every rocket toward the field's source. Rockets inside
// the dead-zone are left alone.
func ApplyGravity(w *World, deltaTime float64, field physics.GravityField) {
	for _, id := range w.RocketIDs() {
		rocket := w.Rockets[id]
		state := rocket.FlightState()
		if field.Apply(&state, deltaTime) {
			rocket.SetFlightState(state)
		}
	}
}

// WrapBounds mirrors rockets that left the playfield to the opposite edge,
// and projectiles too when wrapProjectiles is set. It returns how many
// entities were moved.
func WrapBounds(w *World, bounds physics.Bounds, wrapProjectiles bool) int {
	wrapped := 0
	for _, id := range w.RocketIDs() {
		rocket := w.Rockets[id]
		if pos, ok := bounds.Wrap(rocket.Position); ok {
			rocket.Position = pos
			wrapped++
		}
	}
	if !wrapProjectiles {
		return wrapped
	}
	for _, id := range w.ProjectileIDs() {
		p := w.Projectiles[id]
		if pos, ok := bounds.Wrap(p.Position); ok {
			p.Position = pos
			wrapped++
		}
	}
	return wrapped
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
