// pkg/engine/game.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/opd-ai/go-spacewars/pkg/config"
	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/event"
	"github.com/opd-ai/go-spacewars/pkg/input"
	"github.com/opd-ai/go-spacewars/pkg/logging"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// ErrNonFinite is returned by Step when the simulation produced NaN or
// infinite state. The match cannot continue.
var ErrNonFinite = errors.New("non-finite simulation state")

type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

func (s GameStatus) String() string {
	switch s {
	case GameStatusWaiting:
		return "waiting"
	case GameStatusActive:
		return "active"
	case GameStatusEnded:
		return "ended"
	default:
		return fmt.Sprintf("GameStatus(%d)", int(s))
	}
}

// Tick is the host's input to one simulation step
type Tick struct {
	Delta float64       // seconds since the previous step
	Now   time.Duration // monotonic time since the host started
	Input input.Snapshot
}

// Player is one participant and their round wins
type Player struct {
	ID       string
	Name     string
	RocketID entity.ID
	Wins     int
}

// Game represents the core match state and the per-frame pipeline
type Game struct {
	Config   *config.MatchConfig
	World    *World
	Players  []*Player
	EventBus *event.Bus

	MatchID     string
	Round       int
	Status      GameStatus
	WinnerID    string // empty for a draw or while the round runs
	CurrentTick uint64

	flight     physics.FlightParams
	gravity    physics.GravityField
	bounds     physics.Bounds
	weapons    WeaponRules
	collisions CollisionRules

	fault  error
	logger *logging.Logger
	mu     sync.RWMutex
}

// NewGame validates cfg and sets up the first round. A nil logger discards output.
func NewGame(cfg *config.MatchConfig, logger *logging.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match config: %w", err)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	matchID := uuid.NewString()
	game := &Game{
		Config:   cfg,
		EventBus: event.NewEventBus(),
		MatchID:  matchID,
		Round:    1,
		flight:   cfg.FlightParams(),
		gravity:  cfg.GravityField(),
		bounds:   cfg.PlayfieldBounds(),
		weapons: WeaponRules{
			ProjectileSpeed: cfg.Weapon.ProjectileSpeed,
			SpawnOffset:     cfg.Weapon.SpawnOffset,
			RetireMargin:    cfg.Weapon.RetireMargin,
			Lifetime:        cfg.Weapon.ProjectileLifetime,
			FireOnHold:      cfg.Weapon.FireMode == config.FireModeHeld,
			Bounds:          cfg.PlayfieldBounds(),
		},
		collisions: CollisionRules{
			SunMargin:    cfg.Collision.SunMargin,
			RocketMargin: cfg.Collision.RocketMargin,
			HitRadius:    cfg.Collision.HitRadius,
		},
		logger: logger.With("match_id", matchID),
	}

	for _, pc := range cfg.Players {
		game.Players = append(game.Players, &Player{ID: pc.ID, Name: pc.Name})
	}
	game.initWorld()

	return game, nil
}

// initWorld places the sun and one rocket per player at their spawn points.
func (g *Game) initWorld() {
	g.World = NewWorld()
	g.World.Sun = entity.NewSun(g.World.NextID(), g.Config.SunPosition(), g.Config.Sun.Radius)

	for i, pc := range g.Config.Players {
		rocket := entity.NewRocket(g.World.NextID(), entity.RocketSpec{
			PlayerID:        pc.ID,
			Name:            pc.Name,
			Position:        pc.Position(),
			Rotation:        pc.Heading(g.World.Sun.Position),
			MaxSpeed:        pc.MaxSpeed,
			CollisionRadius: pc.CollisionRadius,
			Cooldown:        pc.Cooldown(),
			Controls:        pc.Controls,
		})
		g.World.AddRocket(rocket)
		g.Players[i].RocketID = rocket.ID
	}
}

// Start activates the round
func (g *Game) Start() {
	g.mu.Lock()
	var events []event.Event
	if g.Status == GameStatusWaiting {
		g.Status = GameStatusActive
		events = append(events, event.NewMatchEvent(event.MatchStarted, g, g.MatchID, g.Round, ""))
		for _, p := range g.Players {
			events = append(events, event.NewRocketEvent(event.RocketSpawned, g, uint64(p.RocketID), p.ID))
		}
		g.logger.Info(context.Background(), "round started", "round", g.Round, "players", len(g.Players))
	}
	g.mu.Unlock()

	g.publish(events)
}

// Stop ends the round without a winner
func (g *Game) Stop() {
	g.mu.Lock()
	var events []event.Event
	if g.Status != GameStatusEnded {
		g.Status = GameStatusEnded
		g.WinnerID = ""
		events = append(events, event.NewMatchEvent(event.MatchEnded, g, g.MatchID, g.Round, ""))
	}
	g.mu.Unlock()

	g.publish(events)
}

// Reset starts the next round from the configured spawn points. Round wins
// carry over; a non-finite fault is cleared.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Round++
	g.Status = GameStatusWaiting
	g.WinnerID = ""
	g.CurrentTick = 0
	g.fault = nil
	g.initWorld()
}

// Step advances the round by one frame: flight, gravity, wrap, weapons and
// collisions, in that order. It returns every entity removed during the
// frame. Steps on a round that is not active do nothing.
func (g *Game) Step(t Tick) (Removals, error) {
	g.mu.Lock()
	removed, events, err := g.step(t)
	g.mu.Unlock()

	g.publish(events)
	return removed, err
}

func (g *Game) step(t Tick) (Removals, []event.Event, error) {
	var (
		removed Removals
		events  []event.Event
	)
	if g.fault != nil {
		return removed, nil, g.fault
	}
	if g.Status != GameStatusActive {
		return removed, nil, nil
	}

	deltaTime := g.clampDelta(t.Delta)
	ctx := context.Background()

	UpdateFlight(g.World, deltaTime, t.Input, g.flight)
	ApplyGravity(g.World, deltaTime, g.gravity)
	WrapBounds(g.World, g.bounds, g.Config.Weapon.WrapProjectiles)

	retired, spawns := UpdateWeapons(g.World, deltaTime, t.Now, t.Input, g.weapons)
	retired = g.World.Apply(retired)
	g.World.Spawn(spawns)
	removed.Merge(retired)
	for _, id := range retired.Projectiles {
		events = append(events, event.NewProjectileEvent(event.ProjectileRetired, g, uint64(id), 0))
	}
	for _, p := range spawns.Projectiles {
		events = append(events, event.NewProjectileEvent(event.ProjectileFired, g, uint64(p.ID), uint64(p.OwnerID)))
		g.logger.Debug(ctx, "projectile fired", "projectile", p.ID, "owner", p.OwnerID)
	}

	contacts := DetectCollisions(g.World, g.collisions)
	owners := g.playersByRocket()
	eliminated := make(map[entity.ID]bool)
	for _, c := range contacts {
		if c.Cause == event.CauseProjectile {
			// Read the shooter before Apply drops the projectile.
			var shooter entity.ID
			if p, ok := g.World.Projectiles[c.OtherID]; ok {
				shooter = p.OwnerID
			}
			events = append(events, event.NewHitEvent(g, uint64(c.OtherID), uint64(shooter), uint64(c.RocketID)))
		}
		if eliminated[c.RocketID] {
			continue
		}
		eliminated[c.RocketID] = true
		events = append(events, event.NewEliminationEvent(g, uint64(c.RocketID), owners[c.RocketID], c.Cause, uint64(c.OtherID)))
		g.logger.Info(ctx, "rocket eliminated", "player", owners[c.RocketID], "cause", string(c.Cause), "tick", g.CurrentTick)
	}
	removed.Merge(g.World.Apply(RemovalsFor(contacts)))

	g.CurrentTick++

	if err := g.World.CheckFinite(); err != nil {
		g.fault = fmt.Errorf("tick %d: %w", g.CurrentTick, err)
		g.Status = GameStatusEnded
		g.logger.Error(ctx, "simulation halted", g.fault)
		return removed, events, g.fault
	}

	if ended := g.checkRoundEnd(); ended != nil {
		events = append(events, ended)
	}
	return removed, events, nil
}

// clampDelta bounds the frame time to the configured range
func (g *Game) clampDelta(deltaTime float64) float64 {
	rules := g.Config.Rules
	if !(deltaTime >= rules.MinDelta) {
		return rules.MinDelta
	}
	if deltaTime > rules.MaxDelta {
		return rules.MaxDelta
	}
	return deltaTime
}

// checkRoundEnd ends the round once at most one rocket is left.
func (g *Game) checkRoundEnd() event.Event {
	if len(g.World.Rockets) > 1 {
		return nil
	}

	g.Status = GameStatusEnded
	g.WinnerID = ""
	for _, p := range g.Players {
		if _, alive := g.World.Rockets[p.RocketID]; alive {
			p.Wins++
			g.WinnerID = p.ID
		}
	}

	winner := g.WinnerID
	if winner == "" {
		winner = "draw"
	}
	g.logger.Info(context.Background(), "round ended", "round", g.Round, "winner", winner, "tick", g.CurrentTick)
	return event.NewMatchEvent(event.MatchEnded, g, g.MatchID, g.Round, g.WinnerID)
}

func (g *Game) playersByRocket() map[entity.ID]string {
	owners := make(map[entity.ID]string, len(g.Players))
	for _, p := range g.Players {
		owners[p.RocketID] = p.ID
	}
	return owners
}

// Champion returns the first player to reach the configured number of
// round wins.
func (g *Game) Champion() (*Player, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	target := g.Config.Rules.RoundsToWin
	if target <= 0 {
		return nil, false
	}
	for _, p := range g.Players {
		if p.Wins >= target {
			return p, true
		}
	}
	return nil, false
}

// GetStatus returns the round status
func (g *Game) GetStatus() GameStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.Status
}

// Err returns the fault that halted the simulation, if any
func (g *Game) Err() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.fault
}

// Render draws the current frame. The state is read-locked while drawing.
func (g *Game) Render(r entity.Renderer) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r.Clear()
	if g.World.Sun != nil {
		g.World.Sun.Render(r)
	}
	for _, id := range g.World.RocketIDs() {
		g.World.Rockets[id].Render(r)
	}
	for _, id := range g.World.ProjectileIDs() {
		g.World.Projectiles[id].Render(r)
	}
	r.Present()
}

func (g *Game) publish(events []event.Event) {
	for _, e := range events {
		g.EventBus.Publish(e)
	}
}
