// pkg/pool/pool_test.go
package pool

import "testing"

func TestPool_AllocateAndGet(t *testing.T) {
	p := New[int](10)

	id, ok := p.Allocate(42)
	if !ok {
		t.Fatal("Allocate() failed on empty pool")
	}

	value, ok := p.Get(id)
	if !ok {
		t.Fatal("Get() returned absent for active slot")
	}
	if value != 42 {
		t.Errorf("Get() = %d, expected 42", value)
	}
}

func TestPool_CapacityExhaustion(t *testing.T) {
	p := New[int](10)

	for i := 0; i < 10; i++ {
		if _, ok := p.Allocate(i); !ok {
			t.Fatalf("Allocate() %d failed before capacity reached", i)
		}
	}

	if _, ok := p.Allocate(99); ok {
		t.Error("Allocate() succeeded past capacity, expected dropped spawn")
	}
	if got := p.ActiveCount(); got != 10 {
		t.Errorf("ActiveCount() = %d, expected 10", got)
	}
}

func TestPool_LIFOReuse(t *testing.T) {
	p := New[int](10)

	ids := make([]SlotID, 0, 10)
	for i := 0; i < 10; i++ {
		id, _ := p.Allocate(i)
		ids = append(ids, id)
	}

	// Free one slot in the middle; the next allocation must reuse it.
	p.Deallocate(ids[4])
	reused, ok := p.Allocate(100)
	if !ok {
		t.Fatal("Allocate() failed after Deallocate")
	}
	if reused != ids[4] {
		t.Errorf("Allocate() = slot %d, expected LIFO reuse of slot %d", reused, ids[4])
	}
}

func TestPool_DeallocateIdempotent(t *testing.T) {
	p := New[int](4)
	id, _ := p.Allocate(1)

	p.Deallocate(id)
	p.Deallocate(id) // second release is a no-op

	if got := p.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount() = %d after double deallocate, expected 0", got)
	}

	// The free list must not contain the slot twice.
	seen := map[SlotID]bool{}
	for i := 0; i < 4; i++ {
		id, ok := p.Allocate(i)
		if !ok {
			t.Fatalf("Allocate() %d failed, free list corrupted", i)
		}
		if seen[id] {
			t.Fatalf("Allocate() returned slot %d twice", id)
		}
		seen[id] = true
	}
}

func TestPool_GetInactive(t *testing.T) {
	p := New[int](4)
	id, _ := p.Allocate(7)
	p.Deallocate(id)

	if _, ok := p.Get(id); ok {
		t.Error("Get() returned a value for an inactive slot")
	}
	if _, ok := p.Get(SlotID(-1)); ok {
		t.Error("Get() returned a value for a negative index")
	}
	if _, ok := p.Get(SlotID(100)); ok {
		t.Error("Get() returned a value for an out-of-range index")
	}
}

func TestPool_ForEachActive(t *testing.T) {
	p := New[int](8)
	a, _ := p.Allocate(1)
	b, _ := p.Allocate(2)
	p.Allocate(3)
	p.Deallocate(b)

	count := 0
	sum := 0
	p.ForEachActive(func(id SlotID, v *int) {
		count++
		sum += *v
	})

	if count != 2 {
		t.Errorf("ForEachActive visited %d slots, expected 2", count)
	}
	if sum != 4 {
		t.Errorf("ForEachActive sum = %d, expected 4", sum)
	}

	// Mutation through the pointer must stick.
	p.ForEachActive(func(id SlotID, v *int) {
		if id == a {
			*v = 50
		}
	})
	if v, _ := p.Get(a); v != 50 {
		t.Errorf("mutation through ForEachActive pointer lost: got %d", v)
	}
}
