package engine

import (
	"fmt"
	"slices"

	"github.com/opd-ai/go-spacewars/pkg/entity"
)

// World owns every live entity of a round.
type World struct {
	Rockets     map[entity.ID]*entity.Rocket
	Projectiles map[entity.ID]*entity.Projectile
	Sun         *entity.Sun

	ids entity.IDGenerator
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		Rockets:     make(map[entity.ID]*entity.Rocket),
		Projectiles: make(map[entity.ID]*entity.Projectile),
	}
}

// NextID allocates an entity ID unique within the world
func (w *World) NextID() entity.ID {
	return w.ids.Next()
}

// AddRocket registers a rocket
func (w *World) AddRocket(r *entity.Rocket) {
	w.Rockets[r.ID] = r
}

// RocketIDs returns the live rocket IDs in ascending order. Stages iterate
// in this order so a tick is reproducible.
func (w *World) RocketIDs() []entity.ID {
	return sortedKeys(w.Rockets)
}

// ProjectileIDs returns the live projectile IDs in ascending order
func (w *World) ProjectileIDs() []entity.ID {
	return sortedKeys(w.Projectiles)
}

func sortedKeys[V any](m map[entity.ID]V) []entity.ID {
	ids := make([]entity.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Removals lists entities a stage wants gone
type Removals struct {
	Rockets     []entity.ID
	Projectiles []entity.ID
}

// Empty reports whether nothing is to be removed
func (r Removals) Empty() bool {
	return len(r.Rockets) == 0 && len(r.Projectiles) == 0
}

// Merge adds other's IDs, skipping ones already listed
func (r *Removals) Merge(other Removals) {
	r.Rockets = appendUnique(r.Rockets, other.Rockets...)
	r.Projectiles = appendUnique(r.Projectiles, other.Projectiles...)
}

func appendUnique(dst []entity.ID, ids ...entity.ID) []entity.ID {
	for _, id := range ids {
		if !slices.Contains(dst, id) {
			dst = append(dst, id)
		}
	}
	return dst
}

// Spawns lists entities a stage wants created
type Spawns struct {
	Projectiles []*entity.Projectile
}

// Apply removes the listed entities and returns the ones that were actually
// present. IDs that are missing or repeated are ignored.
func (w *World) Apply(r Removals) Removals {
	var applied Removals
	for _, id := range r.Rockets {
		if rocket, ok := w.Rockets[id]; ok {
			rocket.Active = false
			delete(w.Rockets, id)
			applied.Rockets = append(applied.Rockets, id)
		}
	}
	for _, id := range r.Projectiles {
		if p, ok := w.Projectiles[id]; ok {
			p.Active = false
			delete(w.Projectiles, id)
			applied.Projectiles = append(applied.Projectiles, id)
		}
	}
	return applied
}

// Spawn adds the listed entities
func (w *World) Spawn(s Spawns) {
	for _, p := range s.Projectiles {
		w.Projectiles[p.ID] = p
	}
}

// CheckFinite returns an error naming the first entity whose kinematic state
// is NaN or infinite.
func (w *World) CheckFinite() error {
	for _, id := range w.RocketIDs() {
		r := w.Rockets[id]
		if !r.Position.IsFinite() || !r.Velocity.IsFinite() || !finite(r.Rotation, r.Speed, r.RotationSpeed) {
			return fmt.Errorf("rocket %d (%s) at %v: %w", id, r.PlayerID, r.Position, ErrNonFinite)
		}
	}
	for _, id := range w.ProjectileIDs() {
		p := w.Projectiles[id]
		if !p.Position.IsFinite() || !finite(p.Rotation, p.Speed) {
			return fmt.Errorf("projectile %d at %v: %w", id, p.Position, ErrNonFinite)
		}
	}
	return nil
}
