// Package event provides a synchronous publish/subscribe bus for game
// happenings, so renderers and audio can react without the engine
// knowing about them.
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted      Type = "game_started"
	GameEnded        Type = "game_ended"
	AsteroidCaptured Type = "asteroid_captured"
	CraftDestroyed   Type = "craft_destroyed"
	ObjectSpawned    Type = "object_spawned"
	FuelChanged      Type = "fuel_changed"
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

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers, synchronously and
// in subscription order.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// CaptureEvent reports an asteroid captured by the craft.
type CaptureEvent struct {
	BaseEvent
	Index int     // slot index within the asteroid population
	Fuel  float64 // craft fuel after the capture bonus
}

// NewCaptureEvent creates a new capture event
func NewCaptureEvent(source interface{}, index int, fuel float64) *CaptureEvent {
	return &CaptureEvent{
		BaseEvent: BaseEvent{
			EventType: AsteroidCaptured,
			Source:    source,
		},
		Index: index,
		Fuel:  fuel,
	}
}

// CollisionEvent reports the craft colliding with a junk object.
type CollisionEvent struct {
	BaseEvent
	Index int // slot index within the junk population
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, index int) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: CraftDestroyed,
			Source:    source,
		},
		Index: index,
	}
}

// SpawnEvent reports a new field object entering the play field.
type SpawnEvent struct {
	BaseEvent
	Kind  string // "asteroid" or "junk"
	Index int
}

// NewSpawnEvent creates a new spawn event
func NewSpawnEvent(source interface{}, kind string, index int) *SpawnEvent {
	return &SpawnEvent{
		BaseEvent: BaseEvent{
			EventType: ObjectSpawned,
			Source:    source,
		},
		Kind:  kind,
		Index: index,
	}
}
