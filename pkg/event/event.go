// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Match event types
const (
	RocketSpawned     Type = "rocket_spawned"
	RocketEliminated  Type = "rocket_eliminated"
	ProjectileFired   Type = "projectile_fired"
	ProjectileRetired Type = "projectile_retired"
	ProjectileHit     Type = "projectile_hit"
	MatchStarted      Type = "match_started"
	MatchEnded        Type = "match_ended"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler.
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Type:   eventType,
		Cancel: func() { b.Unsubscribe(eventType, id) },
	}
}

// Unsubscribe removes the handler registered under id. Unknown ids are ignored.
func (b *Bus) Unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	handlers := make([]Handler, len(subs))
	for i, s := range subs {
		handlers[i] = s.handler
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// Cause explains why a rocket was eliminated
type Cause string

const (
	CauseSun        Cause = "sun"
	CauseRocket     Cause = "rocket"
	CauseProjectile Cause = "projectile"
)

// RocketEvent contains information about rocket-related events
type RocketEvent struct {
	BaseEvent
	RocketID uint64
	PlayerID string
	Cause    Cause
	// OtherID is the rocket or projectile responsible, zero for the sun.
	OtherID uint64
}

// NewRocketEvent creates a new rocket event
func NewRocketEvent(eventType Type, source interface{}, rocketID uint64, playerID string) *RocketEvent {
	return &RocketEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		RocketID: rocketID,
		PlayerID: playerID,
	}
}

// NewEliminationEvent creates a RocketEliminated event
func NewEliminationEvent(source interface{}, rocketID uint64, playerID string, cause Cause, otherID uint64) *RocketEvent {
	e := NewRocketEvent(RocketEliminated, source, rocketID, playerID)
	e.Cause = cause
	e.OtherID = otherID
	return e
}

// ProjectileEvent contains information about projectile events.
//
// OwnerID is the rocket that fired the projectile for ProjectileFired and
// ProjectileHit, and zero for ProjectileRetired. TargetID is the rocket that
// was struck and is only set for ProjectileHit.
type ProjectileEvent struct {
	BaseEvent
	ProjectileID uint64
	OwnerID      uint64
	TargetID     uint64
}

// NewProjectileEvent creates a new projectile event
func NewProjectileEvent(eventType Type, source interface{}, projectileID, ownerID uint64) *ProjectileEvent {
	return &ProjectileEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ProjectileID: projectileID,
		OwnerID:      ownerID,
	}
}

// NewHitEvent creates a ProjectileHit event crediting ownerID for striking
// targetID.
func NewHitEvent(source interface{}, projectileID, ownerID, targetID uint64) *ProjectileEvent {
	e := NewProjectileEvent(ProjectileHit, source, projectileID, ownerID)
	e.TargetID = targetID
	return e
}

// MatchEvent reports a match starting or ending
type MatchEvent struct {
	BaseEvent
	MatchID string
	Round   int
	// WinnerID is the winning player, empty for a draw or a start event.
	WinnerID string
}

// NewMatchEvent creates a new match event
func NewMatchEvent(eventType Type, source interface{}, matchID string, round int, winnerID string) *MatchEvent {
	return &MatchEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		MatchID:  matchID,
		Round:    round,
		WinnerID: winnerID,
	}
}
