// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	ProjectileFired   Type = "projectile_fired"
	ProjectileExpired Type = "projectile_expired"
	ProjectileDropped Type = "projectile_dropped"
	TargetLocked      Type = "target_locked"
	ModeChanged       Type = "mode_changed"
	TickCompleted     Type = "tick_completed"
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

// Subscription represents a registered handler and allows cancellation
type Subscription struct {
	ID     uint64
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type and returns a
// Subscription whose Cancel removes the handler.
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})
	b.mu.Unlock()

	return &Subscription{
		ID: id,
		Cancel: func() {
			b.unsubscribe(eventType, id)
		},
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			b.handlers[eventType] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs, ok := b.handlers[event.GetType()]
	handlers := make([]Handler, len(regs))
	for i, r := range regs {
		handlers[i] = r.handler
	}
	b.mu.RUnlock()

	if !ok {
		return
	}

	// Call each handler
	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// ProjectileEvent contains information about projectile lifecycle events
type ProjectileEvent struct {
	BaseEvent
	ProjectileID uint64
	Homing       bool
}

// NewProjectileEvent creates a new projectile event
func NewProjectileEvent(eventType Type, source interface{}, projectileID uint64, homing bool) *ProjectileEvent {
	return &ProjectileEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ProjectileID: projectileID,
		Homing:       homing,
	}
}

// LockEvent is published when a homing projectile acquires a target
type LockEvent struct {
	BaseEvent
	ProjectileID uint64
	TargetID     uint64
}

// NewLockEvent creates a new target lock event
func NewLockEvent(source interface{}, projectileID, targetID uint64) *LockEvent {
	return &LockEvent{
		BaseEvent: BaseEvent{
			EventType: TargetLocked,
			Source:    source,
		},
		ProjectileID: projectileID,
		TargetID:     targetID,
	}
}

// ModeEvent is published when the ship's movement mode changes
type ModeEvent struct {
	BaseEvent
	OldMode string
	NewMode string
}

// NewModeEvent creates a new movement-mode transition event
func NewModeEvent(source interface{}, oldMode, newMode string) *ModeEvent {
	return &ModeEvent{
		BaseEvent: BaseEvent{
			EventType: ModeChanged,
			Source:    source,
		},
		OldMode: oldMode,
		NewMode: newMode,
	}
}

// TickEvent is published at the end of every simulation tick
type TickEvent struct {
	BaseEvent
	Tick        uint64
	ElapsedTime float64
}

// NewTickEvent creates a new tick completion event
func NewTickEvent(source interface{}, tick uint64, elapsed float64) *TickEvent {
	return &TickEvent{
		BaseEvent: BaseEvent{
			EventType: TickCompleted,
			Source:    source,
		},
		Tick:        tick,
		ElapsedTime: elapsed,
	}
}
