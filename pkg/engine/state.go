package engine

import (
	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// RocketState is a read-only copy of a rocket for hosts
type RocketState struct {
	ID            entity.ID
	PlayerID      string
	Name          string
	Position      physics.Vector2D
	Velocity      physics.Vector2D
	Rotation      float64
	Speed         float64
	RotationSpeed float64
}

// ProjectileState is a read-only copy of a projectile
type ProjectileState struct {
	ID       entity.ID
	OwnerID  entity.ID
	Position physics.Vector2D
	Rotation float64
}

// SunState is a read-only copy of the sun
type SunState struct {
	ID       entity.ID
	Position physics.Vector2D
	Radius   float64
}

// GameState is everything a host needs to draw one frame
type GameState struct {
	MatchID     string
	Round       int
	Tick        uint64
	Status      GameStatus
	WinnerID    string
	Wins        map[string]int
	Sun         SunState
	Rockets     []RocketState
	Projectiles []ProjectileState
}

// Snapshot copies the current state. Rockets and projectiles are ordered by ID.
func (g *Game) Snapshot() GameState {
	g.mu.RLock()
	defer g.mu.RUnlock()

	state := GameState{
		MatchID:  g.MatchID,
		Round:    g.Round,
		Tick:     g.CurrentTick,
		Status:   g.Status,
		WinnerID: g.WinnerID,
		Wins:     make(map[string]int, len(g.Players)),
	}
	for _, p := range g.Players {
		state.Wins[p.ID] = p.Wins
	}

	if sun := g.World.Sun; sun != nil {
		state.Sun = SunState{ID: sun.ID, Position: sun.Position, Radius: sun.Radius}
	}
	for _, id := range g.World.RocketIDs() {
		r := g.World.Rockets[id]
		state.Rockets = append(state.Rockets, RocketState{
			ID:            r.ID,
			PlayerID:      r.PlayerID,
			Name:          r.Name,
			Position:      r.Position,
			Velocity:      r.Velocity,
			Rotation:      r.Rotation,
			Speed:         r.Speed,
			RotationSpeed: r.RotationSpeed,
		})
	}
	for _, id := range g.World.ProjectileIDs() {
		p := g.World.Projectiles[id]
		state.Projectiles = append(state.Projectiles, ProjectileState{
			ID:       p.ID,
			OwnerID:  p.OwnerID,
			Position: p.Position,
			Rotation: p.Rotation,
		})
	}
	return state
}

// Rocket returns the state of playerID's rocket, false once it is eliminated
func (s GameState) Rocket(playerID string) (RocketState, bool) {
	for _, r := range s.Rockets {
		if r.PlayerID == playerID {
			return r, true
		}
	}
	return RocketState{}, false
}
