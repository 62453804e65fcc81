package engine

import (
	"math"

	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/event"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// CollisionRules holds the collision tolerances
type CollisionRules struct {
	SunMargin    float64
	RocketMargin float64
	HitRadius    float64
}

// Contact is one lethal interaction found by DetectCollisions
type Contact struct {
	Cause    event.Cause
	RocketID entity.ID
	// OtherID is the other rocket or the projectile, zero for the sun.
	OtherID entity.ID
}

// DetectCollisions runs the three checks against final positions without
// changing the world. Contacts are returned in a stable order: sun, then
// rocket pairs, then projectile hits.
func DetectCollisions(w *World, rules CollisionRules) []Contact {
	var contacts []Contact
	rocketIDs := w.RocketIDs()

	if w.Sun != nil {
		// the rocket's own radius plus the margin; the sun's drawn radius is not used
		body := physics.Circle{Center: w.Sun.Position, Radius: rules.SunMargin}
		for _, id := range rocketIDs {
			if w.Rockets[id].GetCollider().Collides(body) {
				contacts = append(contacts, Contact{Cause: event.CauseSun, RocketID: id})
			}
		}
	}

	for i, a := range rocketIDs {
		for _, b := range rocketIDs[i+1:] {
			ra, rb := w.Rockets[a], w.Rockets[b]
			reach := math.Max(ra.CollisionRadius(), rb.CollisionRadius()) + rules.RocketMargin
			body := physics.Circle{Center: ra.Position, Radius: reach}
			if body.ContainsPoint(rb.Position) {
				contacts = append(contacts,
					Contact{Cause: event.CauseRocket, RocketID: a, OtherID: b},
					Contact{Cause: event.CauseRocket, RocketID: b, OtherID: a},
				)
			}
		}
	}

	projectileIDs := w.ProjectileIDs()
	for _, rid := range rocketIDs {
		rocket := w.Rockets[rid]
		hitbox := physics.Circle{Center: rocket.Position, Radius: rules.HitRadius}
		for _, pid := range projectileIDs {
			p := w.Projectiles[pid]
			if p.OwnerID == rid {
				continue
			}
			if hitbox.ContainsPoint(p.Position) {
				contacts = append(contacts, Contact{Cause: event.CauseProjectile, RocketID: rid, OtherID: pid})
			}
		}
	}

	return contacts
}

// RemovalsFor turns contacts into a removal batch: every rocket involved and
// every projectile that hit something.
func RemovalsFor(contacts []Contact) Removals {
	var r Removals
	for _, c := range contacts {
		r.Rockets = appendUnique(r.Rockets, c.RocketID)
		if c.Cause == event.CauseProjectile {
			r.Projectiles = appendUnique(r.Projectiles, c.OtherID)
		}
	}
	return r
}

// ResolveCollisions returns the entities the current positions eliminate
func ResolveCollisions(w *World, rules CollisionRules) Removals {
	return RemovalsFor(DetectCollisions(w, rules))
}
