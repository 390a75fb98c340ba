// Package slotvec: central types for the generational slot table.
//
// This file declares Index, the internal slot element, the SlotVec
// container, and the New constructor. Method implementations live in
// slotvec.go (mutation/lookup), iter.go (iteration) and codec.go
// (serialization).
package slotvec

// noSlot marks the absence of a slot reference, both for the free-list
// head and for the terminal link of the free chain.
const noSlot = -1

// Index identifies one specific occupancy of a slot: the physical Slot
// position plus the Generation the slot carried when the value was stored.
// An Index obtained from Add keeps resolving to its value until that exact
// occupancy is removed; afterwards it resolves to nothing, forever, even if
// the slot is later reused (the reuse carries a higher generation).
//
// The zero Index refers to slot 0 at generation 0 and is a perfectly valid
// handle for the first value ever added; there is no sentinel "null" Index.
type Index struct {
	// Slot is the physical position in the table's backing array.
	Slot int `json:"slot" yaml:"slot"`

	// Generation counts how many times the slot has been vacated.
	Generation uint64 `json:"generation" yaml:"generation"`
}

// element is the tagged slot state: either occupied by a value at some
// generation, or open at some generation with an intrusive link to the next
// open slot (noSlot terminates the chain).
type element[T any] struct {
	value      T
	generation uint64
	next       int // next open slot; meaningful only when !occupied
	occupied   bool
}

// SlotVec is a growable table of values behind stable generational Index
// handles. Vacated slots are threaded into an intrusive singly-linked free
// list (the link lives inside the open slot itself), so Add and Remove are
// O(1) with no auxiliary allocation.
//
// SlotVec is a plain value with no internal locking; concurrent use
// requires external synchronization.
type SlotVec[T any] struct {
	elems    []element[T]
	freeHead int // first open slot, noSlot if none
	count    int // number of occupied slots
}

// New creates an empty SlotVec.
// Complexity: O(1)
func New[T any]() *SlotVec[T] {
	return &SlotVec[T]{freeHead: noSlot}
}
