// Package slotvec: lazy iteration over occupied entries.
//
// All sequences visit occupied slots in slot order (not insertion order:
// reuse can place a newer value in a lower slot) and are restartable; each
// range statement walks the table afresh. Mutating the table while a
// sequence is live is undefined, same as for a map.

package slotvec

import "iter"

// Indexes yields the Index of every occupied slot, in slot order.
// Complexity: O(slots) per full walk.
func (s *SlotVec[T]) Indexes() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for slot := range s.elems {
			el := &s.elems[slot]
			if !el.occupied {
				continue
			}
			if !yield(Index{Slot: slot, Generation: el.generation}) {
				return
			}
		}
	}
}

// Values yields a copy of every occupied value, in slot order.
func (s *SlotVec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for slot := range s.elems {
			el := &s.elems[slot]
			if el.occupied && !yield(el.value) {
				return
			}
		}
	}
}

// All yields (Index, value) pairs for every occupied slot, in slot order.
// Values are copies; use AllMut to mutate in place.
func (s *SlotVec[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for slot := range s.elems {
			el := &s.elems[slot]
			if !el.occupied {
				continue
			}
			if !yield(Index{Slot: slot, Generation: el.generation}, el.value) {
				return
			}
		}
	}
}

// AllMut yields (Index, *value) pairs for every occupied slot, in slot
// order. The pointers reach into the table's storage: writes through them
// mutate the stored values directly.
func (s *SlotVec[T]) AllMut() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		for slot := range s.elems {
			el := &s.elems[slot]
			if !el.occupied {
				continue
			}
			if !yield(Index{Slot: slot, Generation: el.generation}, &el.value) {
				return
			}
		}
	}
}
