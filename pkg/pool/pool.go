// pkg/pool/pool.go

// Package pool provides a fixed-capacity slot allocator for hot simulation
// loops. Slots are reused through a LIFO free list, so steady-state ticks
// allocate no memory.
package pool

// SlotID addresses a slot within a Pool. IDs are plain indices with no
// generation tag: an ID captured across a Deallocate/Allocate cycle of the
// same slot will silently address the new occupant. Callers that hold IDs
// across ticks must revalidate them.
type SlotID int

// Pool is a fixed-capacity object pool. Allocate and Deallocate are O(1).
type Pool[T any] struct {
	objects []T
	active  []bool
	free    []SlotID
}

// New creates a pool with the given capacity. Capacity never changes.
func New[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool[T]{
		objects: make([]T, capacity),
		active:  make([]bool, capacity),
		free:    make([]SlotID, 0, capacity),
	}
	// Reverse fill so the first allocations hand out low indices first.
	for i := capacity - 1; i >= 0; i-- {
		p.free = append(p.free, SlotID(i))
	}
	return p
}

// Allocate stores value in a free slot and returns its ID. When the pool is
// exhausted it returns ok=false; callers treat this as a dropped spawn, not
// an error.
func (p *Pool[T]) Allocate(value T) (SlotID, bool) {
	n := len(p.free)
	if n == 0 {
		return 0, false
	}
	id := p.free[n-1]
	p.free = p.free[:n-1]
	p.objects[id] = value
	p.active[id] = true
	return id, true
}

// Deallocate releases a slot. Releasing an inactive or out-of-range slot is
// a no-op.
func (p *Pool[T]) Deallocate(id SlotID) {
	if !p.isActive(id) {
		return
	}
	p.active[id] = false
	p.free = append(p.free, id)
}

// Get returns a copy of the value in the slot, or ok=false when the slot is
// inactive or out of range.
func (p *Pool[T]) Get(id SlotID) (T, bool) {
	if !p.isActive(id) {
		var zero T
		return zero, false
	}
	return p.objects[id], true
}

// Ref returns a mutable pointer to the value in the slot, or ok=false when
// the slot is inactive or out of range. The pointer is only valid until the
// slot is deallocated.
func (p *Pool[T]) Ref(id SlotID) (*T, bool) {
	if !p.isActive(id) {
		return nil, false
	}
	return &p.objects[id], true
}

// ForEachActive calls fn for every active slot in ascending index order.
// The order is stable as long as no allocations or deallocations happen
// during iteration. fn must not allocate or deallocate slots.
func (p *Pool[T]) ForEachActive(fn func(id SlotID, value *T)) {
	for i := range p.objects {
		if p.active[i] {
			fn(SlotID(i), &p.objects[i])
		}
	}
}

// ActiveCount returns the number of active slots.
func (p *Pool[T]) ActiveCount() int {
	return len(p.objects) - len(p.free)
}

// Capacity returns the fixed capacity of the pool.
func (p *Pool[T]) Capacity() int {
	return len(p.objects)
}

func (p *Pool[T]) isActive(id SlotID) bool {
	return id >= 0 && int(id) < len(p.objects) && p.active[id]
}
