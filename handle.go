package sketch

import (
	"fmt"
	"iter"
)

// handle addresses a slot of an arena. The generation is bumped every time
// the slot is freed, so a handle to a deleted record never resolves to a
// record that later reuses the slot. The zero handle addresses nothing.
type handle struct {
	index uint32
	gen   uint32
}

func (h handle) isZero() bool { return h.gen == 0 }

// RequestHandle identifies a [Request].
type RequestHandle struct{ h handle }

// EntityHandle identifies an [Entity]. The zero value is [NoEntity].
type EntityHandle struct{ h handle }

// ConstraintHandle identifies a [Constraint].
type ConstraintHandle struct{ h handle }

// NoEntity is the sentinel for "no entity", used for unused entity slots of
// constraints.
var NoEntity EntityHandle

func (h RequestHandle) IsZero() bool    { return h.h.isZero() }
func (h EntityHandle) IsZero() bool     { return h.h.isZero() }
func (h ConstraintHandle) IsZero() bool { return h.h.isZero() }

func (h RequestHandle) String() string {
	if h.IsZero() {
		return "r-"
	}
	return fmt.Sprintf("r%d.%d", h.h.index, h.h.gen)
}

func (h EntityHandle) String() string {
	if h.IsZero() {
		return "e-"
	}
	return fmt.Sprintf("e%d.%d", h.h.index, h.h.gen)
}

func (h ConstraintHandle) String() string {
	if h.IsZero() {
		return "c-"
	}
	return fmt.Sprintf("c%d.%d", h.h.index, h.h.gen)
}

type slot[T any] struct {
	gen  uint32
	live bool
	val  T
}

// arena stores records in slots addressed by generation-checked handles.
// Pointers returned by get are only valid until the next insert.
type arena[T any] struct {
	slots []slot[T]
	free  []uint32
	n     int
}

func (a *arena[T]) insert(v T) handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		idx = uint32(len(a.slots) - 1)
	}
	s := &a.slots[idx]
	s.gen++
	s.live = true
	s.val = v
	a.n++
	return handle{index: idx, gen: s.gen}
}

func (a *arena[T]) get(h handle) (*T, bool) {
	if h.isZero() || int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, false
	}
	return &s.val, true
}

func (a *arena[T]) remove(h handle) bool {
	if _, ok := a.get(h); !ok {
		return false
	}
	s := &a.slots[h.index]
	s.live = false
	s.val = *new(T)
	a.free = append(a.free, h.index)
	a.n--
	return true
}

func (a *arena[T]) len() int { return a.n }

// all yields copies of the live records in slot order. Each step re-reads the
// slot, so records removed during iteration are skipped rather than observed
// stale.
func (a *arena[T]) all() iter.Seq2[handle, T] {
	return func(yield func(handle, T) bool) {
		for i := 0; i < len(a.slots); i++ {
			s := a.slots[i]
			if !s.live {
				continue
			}
			if !yield(handle{index: uint32(i), gen: s.gen}, s.val) {
				return
			}
		}
	}
}

// each calls f with a pointer to every live record, in slot order. f must not
// insert into or remove from the arena.
func (a *arena[T]) each(f func(handle, *T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.live {
			f(handle{index: uint32(i), gen: s.gen}, &s.val)
		}
	}
}
