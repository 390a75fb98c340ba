// Package slotvec: serialization of Index handles and whole tables.
//
// Two index representations exist and parse back to the identical pair:
// the structural form (the plain struct, default marshaling) and the
// compact literal "{slot}.{generation}" produced by String and consumed by
// ParseIndex. Tables serialize as a mapping from compact live Index to
// value; open slots are omitted and reconstructed on load.

package slotvec

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// compactSep separates slot from generation in the compact index literal.
const compactSep = "."

// String renders ix in the canonical compact form, e.g. "0.0" for the
// first occupancy of slot 0.
func (ix Index) String() string {
	return strconv.Itoa(ix.Slot) + compactSep + strconv.FormatUint(ix.Generation, 10)
}

// ParseIndex parses the canonical compact form back into an Index.
// Malformed literals (missing separator, empty, signed or non-numeric
// parts) are rejected with an error wrapping ErrMalformedIndex.
func ParseIndex(s string) (Index, error) {
	slotPart, genPart, found := strings.Cut(s, compactSep)
	if !found {
		return Index{}, fmt.Errorf("%w: %q has no %q separator", ErrMalformedIndex, s, compactSep)
	}
	slot, err := strconv.Atoi(slotPart)
	if err != nil || slot < 0 || len(slotPart) == 0 || slotPart[0] == '+' {
		return Index{}, fmt.Errorf("%w: %q has a non-numeric or negative slot", ErrMalformedIndex, s)
	}
	gen, err := strconv.ParseUint(genPart, 10, 64)
	if err != nil {
		return Index{}, fmt.Errorf("%w: %q has a non-numeric generation", ErrMalformedIndex, s)
	}

	return Index{Slot: slot, Generation: gen}, nil
}

// MarshalJSON emits the table as a JSON object keyed by compact live Index.
// Open slots are omitted entirely.
func (s *SlotVec[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.liveEntries())
}

// UnmarshalJSON reconstructs the table from the mapping form produced by
// MarshalJSON. See load for the free-list reconstruction rules.
func (s *SlotVec[T]) UnmarshalJSON(data []byte) error {
	var entries map[string]T
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	return s.load(entries)
}

// MarshalYAML emits the same mapping shape as MarshalJSON, for yaml.v3.
func (s *SlotVec[T]) MarshalYAML() (interface{}, error) {
	return s.liveEntries(), nil
}

// UnmarshalYAML reconstructs the table from a YAML mapping node.
func (s *SlotVec[T]) UnmarshalYAML(value *yaml.Node) error {
	var entries map[string]T
	if err := value.Decode(&entries); err != nil {
		return err
	}

	return s.load(entries)
}

// liveEntries snapshots the occupied slots as a compact-index keyed map.
func (s *SlotVec[T]) liveEntries() map[string]T {
	out := make(map[string]T, s.count)
	for ix, v := range s.All() {
		out[ix.String()] = v
	}

	return out
}

// load replaces the receiver's contents with the given live entries.
//
// Every live entry keeps its exact slot and generation, so Index handles
// serialized elsewhere keep resolving after a round-trip. Slots below the
// maximum seen that are absent from the input are implicit gaps: they are
// recreated as open slots at generation 0 and threaded, in ascending scan
// order, into the free list. Every open slot ends up reachable from the
// free head and every chained slot is open; no particular chain order is
// promised.
// Complexity: O(max slot seen).
func (s *SlotVec[T]) load(entries map[string]T) error {
	maxSlot := noSlot
	parsed := make(map[int]struct {
		gen   uint64
		value T
	}, len(entries))
	for key, value := range entries {
		ix, err := ParseIndex(key)
		if err != nil {
			return err
		}
		if _, dup := parsed[ix.Slot]; dup {
			return fmt.Errorf("%w: slot %d", ErrDuplicateIndex, ix.Slot)
		}
		parsed[ix.Slot] = struct {
			gen   uint64
			value T
		}{gen: ix.Generation, value: value}
		if ix.Slot > maxSlot {
			maxSlot = ix.Slot
		}
	}

	elems := make([]element[T], maxSlot+1)
	freeHead := noSlot
	for slot := 0; slot <= maxSlot; slot++ {
		if entry, ok := parsed[slot]; ok {
			elems[slot] = element[T]{value: entry.value, generation: entry.gen, occupied: true}
			continue
		}
		// Implicit gap: open at generation 0, pushed onto the free chain.
		elems[slot] = element[T]{next: freeHead}
		freeHead = slot
	}

	s.elems = elems
	s.freeHead = freeHead
	s.count = len(parsed)

	return nil
}
