package survival

import "iter"

// Handle references an entity stored in an Arena.
// The generation makes handles to removed entities stale: a slot reused by a
// new entity carries a different generation, so old handles no longer resolve.
type Handle struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether h was never issued.
func (h Handle) IsZero() bool {
	return h.Gen == 0
}

type slot[T any] struct {
	gen   uint32
	alive bool
	val   T
}

// Arena is a slot store with generation-tagged handles and free-list reuse.
// Iteration visits live entries in slot order. Slots are individually
// allocated, so pointers returned by Get stay valid across inserts.
type Arena[T any] struct {
	slots []*slot[T]
	free  []uint32
	live  int
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, &slot[T]{})
	}

	s := a.slots[idx]
	s.gen++
	s.alive = true
	s.val = v
	a.live++
	return Handle{Index: idx, Gen: s.gen}
}

// Get returns a pointer to the entity behind h, or false when h is stale.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if int(h.Index) >= len(a.slots) {
		return nil, false
	}
	s := a.slots[h.Index]
	if !s.alive || s.gen != h.Gen {
		return nil, false
	}
	return &s.val, true
}

// Remove deletes the entity behind h. Removing a stale handle is a no-op.
func (a *Arena[T]) Remove(h Handle) bool {
	if _, ok := a.Get(h); !ok {
		return false
	}
	s := a.slots[h.Index]
	var zero T
	s.val = zero
	s.alive = false
	a.free = append(a.free, h.Index)
	a.live--
	return true
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return a.live
}

// All iterates live entities in slot order. Removing the current entity
// during iteration is allowed.
func (a *Arena[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for i, s := range a.slots {
			if !s.alive {
				continue
			}
			if !yield(Handle{Index: uint32(i), Gen: s.gen}, &s.val) {
				return
			}
		}
	}
}

// Values returns a copy of every live entity in slot order.
func (a *Arena[T]) Values() []T {
	out := make([]T, 0, a.live)
	for _, v := range a.All() {
		out = append(out, *v)
	}
	return out
}

// Clear removes every entity. Generations survive so older handles stay stale.
func (a *Arena[T]) Clear() {
	a.free = a.free[:0]
	for i := range a.slots {
		var zero T
		a.slots[i].val = zero
		a.slots[i].alive = false
		a.free = append(a.free, uint32(len(a.slots)-1-i))
	}
	a.live = 0
}
