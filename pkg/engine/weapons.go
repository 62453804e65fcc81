package engine

import (
	"time"

	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/input"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// WeaponRules holds the projectile settings shared by all rockets
type WeaponRules struct {
	ProjectileSpeed float64
	SpawnOffset     float64
	RetireMargin    float64
	// Lifetime retires projectiles after this many seconds of flight. Zero
	// means no limit.
	Lifetime float64
	// FireOnHold fires whenever the key is down and the cooldown has elapsed,
	// instead of only on the frame the key goes down.
	FireOnHold bool
	Bounds     physics.Bounds
}

// AdvanceProjectiles moves every projectile along its heading and returns
// the ones that have left the playfield by more than the retire margin or
// outlived the lifetime.
func AdvanceProjectiles(w *World, deltaTime float64, rules WeaponRules) Removals {
	var retired Removals
	limit := rules.Bounds.Expand(rules.RetireMargin)
	for _, id := range w.ProjectileIDs() {
		p := w.Projectiles[id]
		p.Advance(deltaTime)
		expired := rules.Lifetime > 0 && p.Age >= rules.Lifetime
		if expired || !limit.Contains(p.Position) {
			retired.Projectiles = append(retired.Projectiles, id)
		}
	}
	return retired
}

// TryFire fires rocket's weapon if its trigger is active this frame and the
// cooldown has elapsed. It returns nil when nothing was fired.
func TryFire(w *World, rocket *entity.Rocket, now time.Duration, snap input.Snapshot, rules WeaponRules) *entity.Projectile {
	trigger := rocket.Controls().Resolve(snap, input.Fire)
	pulled := trigger.JustPressed
	if rules.FireOnHold {
		pulled = trigger.Pressed
	}
	if !pulled || !rocket.CooledDown(now) {
		return nil
	}
	return rocket.Fire(w.NextID(), now, rules.ProjectileSpeed, rules.SpawnOffset)
}

// UpdateWeapons advances and retires the existing projectiles, then fires
// new ones. New projectiles are returned as spawns and first move on the
// next tick.
func UpdateWeapons(w *World, deltaTime float64, now time.Duration, snap input.Snapshot, rules WeaponRules) (Removals, Spawns) {
	retired := AdvanceProjectiles(w, deltaTime, rules)

	var spawns Spawns
	for _, id := range w.RocketIDs() {
		if p := TryFire(w, w.Rockets[id], now, snap, rules); p != nil {
			spawns.Projectiles = append(spawns.Projectiles, p)
		}
	}
	return retired, spawns
}
