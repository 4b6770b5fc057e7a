// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-stardrift/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

var nextEntityID uint64

// GenerateID returns a process-unique entity ID. IDs start at 1; zero is
// reserved as "no entity".
func GenerateID() ID {
	return ID(atomic.AddUint64(&nextEntityID, 1))
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Rotation float64
	Active   bool
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// Integrate advances the entity's position by its velocity
func (e *BaseEntity) Integrate(deltaTime float64) {
	e.Position = e.Position.Add(e.Velocity.Scale(deltaTime))
}
