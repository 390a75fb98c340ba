// Package slotvec: SlotVec method implementations.
//
// This file provides the O(1) mutation and lookup surface (Add, Get,
// Remove, Clear) and the replay primitives consumed by diff engines
// (RemovePreservingGeneration, OpenAt, OpenAtNext, ForceOccupy).
// Every lookup validates the caller's generation exactly; a stale Index
// never resolves to a live value.

package slotvec

import "fmt"

// Add stores value in the table and returns its Index.
// The head of the free list is reused when one exists (the new occupancy
// inherits the open slot's generation); otherwise a fresh slot is appended
// at generation 0.
// Complexity: O(1) amortized.
func (s *SlotVec[T]) Add(value T) Index {
	// Reuse an open slot when the free list is non-empty.
	if s.freeHead != noSlot {
		slot := s.freeHead
		open := &s.elems[slot]
		// Unlink from the free chain before overwriting the link field.
		s.freeHead = open.next
		gen := open.generation
		s.elems[slot] = element[T]{value: value, generation: gen, occupied: true}
		s.count++

		return Index{Slot: slot, Generation: gen}
	}

	// No open slot: append a brand-new one at generation 0.
	s.elems = append(s.elems, element[T]{value: value, occupied: true})
	s.count++

	return Index{Slot: len(s.elems) - 1, Generation: 0}
}

// Get returns the value stored at ix, if the slot is occupied at exactly
// ix.Generation. A removed, reused, or never-allocated slot reports false.
// Complexity: O(1).
func (s *SlotVec[T]) Get(ix Index) (T, bool) {
	if ptr, ok := s.At(ix); ok {
		return *ptr, true
	}
	var zero T

	return zero, false
}

// At returns a pointer to the value stored at ix under the same validity
// rule as Get. The pointer stays valid only until the next Add (growth may
// move the backing array); treat it as a short-lived borrow.
// Complexity: O(1).
func (s *SlotVec[T]) At(ix Index) (*T, bool) {
	if ix.Slot < 0 || ix.Slot >= len(s.elems) {
		return nil, false
	}
	el := &s.elems[ix.Slot]
	if !el.occupied || el.generation != ix.Generation {
		return nil, false
	}

	return &el.value, true
}

// Remove vacates the slot addressed by ix and returns the removed value.
// The slot's generation advances by one and the slot is pushed onto the
// free list, which is what makes every outstanding Index for the old
// occupancy permanently invalid.
// Complexity: O(1).
func (s *SlotVec[T]) Remove(ix Index) (T, bool) {
	return s.removeAt(ix, ix.Generation+1)
}

// RemovePreservingGeneration vacates the slot addressed by ix without
// advancing its generation.
//
// This exists for diff engines rolling back an Add: the freed slot must
// stay open at exactly ix.Generation so that a later re-apply of the same
// diff can validate with OpenAt and reproduce the identical Index. It is
// not part of the ordinary lifecycle; normal code wants Remove.
// Complexity: O(1).
func (s *SlotVec[T]) RemovePreservingGeneration(ix Index) (T, bool) {
	return s.removeAt(ix, ix.Generation)
}

// removeAt implements both removal flavors: the slot is validated against
// ix, vacated, stamped with nextGen, and pushed onto the free list.
func (s *SlotVec[T]) removeAt(ix Index, nextGen uint64) (T, bool) {
	var zero T
	if ix.Slot < 0 || ix.Slot >= len(s.elems) {
		return zero, false
	}
	el := &s.elems[ix.Slot]
	if !el.occupied || el.generation != ix.Generation {
		return zero, false
	}

	removed := el.value
	*el = element[T]{generation: nextGen, next: s.freeHead}
	s.freeHead = ix.Slot
	s.count--

	return removed, true
}

// OpenAt reports whether the slot addressed by ix is open at exactly
// ix.Generation. Diff engines use it to check that an Add can be re-applied
// reproducing the identical Index.
// Complexity: O(1).
func (s *SlotVec[T]) OpenAt(ix Index) bool {
	return s.openAtGen(ix.Slot, ix.Generation)
}

// OpenAtNext reports whether the slot addressed by ix is open at exactly
// ix.Generation+1, i.e. the occupancy ix referred to was removed and the
// slot has not been reused since. Diff engines use it to check that a
// Remove can be rolled back.
// Complexity: O(1).
func (s *SlotVec[T]) OpenAtNext(ix Index) bool {
	return s.openAtGen(ix.Slot, ix.Generation+1)
}

func (s *SlotVec[T]) openAtGen(slot int, gen uint64) bool {
	if slot < 0 || slot >= len(s.elems) {
		return false
	}
	el := &s.elems[slot]

	return !el.occupied && el.generation == gen
}

// ForceOccupy writes value into the exact slot ix.Slot at generation
// ix.Generation, bypassing the free-list allocation protocol. The slot is
// unlinked from the free chain so the free list stays sound.
//
// This is a replay primitive: callers (the graph diff engine) must have
// already validated the slot with OpenAt or OpenAtNext. Calling it on a
// slot that is not open is an invariant violation and panics.
// Complexity: O(open slots) worst case for the unlink walk; the common
// case (slot at the head of the chain) is O(1).
func (s *SlotVec[T]) ForceOccupy(ix Index, value T) {
	if ix.Slot < 0 || ix.Slot >= len(s.elems) || s.elems[ix.Slot].occupied {
		panic(fmt.Sprintf("slotvec: force-occupy of slot %d which is not open", ix.Slot))
	}
	s.unlinkFree(ix.Slot)
	s.elems[ix.Slot] = element[T]{value: value, generation: ix.Generation, occupied: true}
	s.count++
}

// unlinkFree removes slot from the free chain. The slot is known to be
// open; failing to find it in the chain means the free list lost track of
// an open slot, which is corruption, not caller error.
func (s *SlotVec[T]) unlinkFree(slot int) {
	if s.freeHead == slot {
		s.freeHead = s.elems[slot].next

		return
	}
	for cur := s.freeHead; cur != noSlot; cur = s.elems[cur].next {
		if s.elems[cur].next == slot {
			s.elems[cur].next = s.elems[slot].next

			return
		}
	}
	panic(fmt.Sprintf("slotvec: state corrupted: open slot %d is not reachable from the free list", slot))
}

// Len returns the number of occupied slots. O(1).
func (s *SlotVec[T]) Len() int {
	return s.count
}

// Clear drops every entry and the free list, leaving the table as if
// freshly constructed. Outstanding Indexes from before the Clear resolve
// to nothing, but slot numbers and generations restart from zero, so new
// occupancies may mint Index values equal to pre-Clear ones.
// Complexity: O(1) (the backing array is released to the collector).
func (s *SlotVec[T]) Clear() {
	s.elems = nil
	s.freeHead = noSlot
	s.count = 0
}

// CloneFunc returns a structure-exact copy of the table: same slots, same
// generations, same free-list chain. Occupied values are copied through
// cloneValue, which must return an independent value when T carries
// interior pointers (pass the identity function for plain value types).
// Complexity: O(slots).
func (s *SlotVec[T]) CloneFunc(cloneValue func(T) T) *SlotVec[T] {
	out := &SlotVec[T]{
		elems:    make([]element[T], len(s.elems)),
		freeHead: s.freeHead,
		count:    s.count,
	}
	copy(out.elems, s.elems)
	for i := range out.elems {
		if out.elems[i].occupied {
			out.elems[i].value = cloneValue(out.elems[i].value)
		}
	}

	return out
}
