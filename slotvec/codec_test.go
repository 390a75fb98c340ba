// SPDX-License-Identifier: MIT
// Package slotvec_test: serialization contracts — compact index literals,
// JSON/YAML table round-trips, and free-list reconstruction from gaps.

package slotvec_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gengraph/slotvec"
)

// TestIndex_CompactRoundTrip verifies String/ParseIndex are exact inverses.
func TestIndex_CompactRoundTrip(t *testing.T) {
	for _, ix := range []slotvec.Index{
		{Slot: 0, Generation: 0},
		{Slot: 3, Generation: 1},
		{Slot: 120, Generation: 4096},
	} {
		parsed, err := slotvec.ParseIndex(ix.String())
		require.NoError(t, err)
		require.Equal(t, ix, parsed)
	}

	parsed, err := slotvec.ParseIndex("0.0")
	require.NoError(t, err)
	require.Equal(t, slotvec.Index{Slot: 0, Generation: 0}, parsed)
}

// TestParseIndex_Malformed verifies every malformed shape is rejected with
// a descriptive error wrapping ErrMalformedIndex.
func TestParseIndex_Malformed(t *testing.T) {
	for _, literal := range []string{
		"",      // empty
		"3",     // no separator
		".",     // empty halves
		"1.",    // empty generation
		".4",    // empty slot
		"a.b",   // non-numeric
		"-1.0",  // negative slot
		"1.-2",  // negative generation
		"+1.0",  // signed slot
		"1.2.3", // trailing garbage
		"1. 2",  // embedded space
	} {
		_, err := slotvec.ParseIndex(literal)
		require.ErrorIs(t, err, slotvec.ErrMalformedIndex, "literal %q", literal)
		require.Contains(t, err.Error(), literal, "error should identify the input")
	}
}

// TestSlotVec_JSONRoundTrip verifies the mapping form: only live entries
// are emitted, and reloading preserves their exact slots and generations.
func TestSlotVec_JSONRoundTrip(t *testing.T) {
	sv := slotvec.New[string]()
	ixs := make([]slotvec.Index, 5)
	for i, v := range []string{"a", "b", "c", "d", "e"} {
		ixs[i] = sv.Add(v)
	}
	// Punch two holes so the wire form has implicit gaps.
	sv.Remove(ixs[1])
	sv.Remove(ixs[3])

	data, err := json.Marshal(sv)
	require.NoError(t, err)
	require.JSONEq(t, `{"0.0":"a","2.0":"c","4.0":"e"}`, string(data))

	loaded := slotvec.New[string]()
	require.NoError(t, json.Unmarshal(data, loaded))
	require.Equal(t, 3, loaded.Len())
	for _, i := range []int{0, 2, 4} {
		got, ok := loaded.Get(ixs[i])
		require.True(t, ok, "live entry %s must survive the round-trip", ixs[i])
		require.Equal(t, []string{"a", "b", "c", "d", "e"}[i], got)
	}

	// The gaps were threaded into the free list: the next two adds reuse
	// them (at generation 0, their pre-save history is not recorded), and
	// only then does the table grow.
	r1 := loaded.Add("x")
	r2 := loaded.Add("y")
	require.ElementsMatch(t, []int{1, 3}, []int{r1.Slot, r2.Slot})
	require.Equal(t, uint64(0), r1.Generation)
	require.Equal(t, uint64(0), r2.Generation)
	appended := loaded.Add("z")
	require.Equal(t, 5, appended.Slot)
}

// TestSlotVec_JSONEmpty verifies the degenerate table round-trips.
func TestSlotVec_JSONEmpty(t *testing.T) {
	sv := slotvec.New[int]()

	data, err := json.Marshal(sv)
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(data))

	loaded := slotvec.New[int]()
	require.NoError(t, json.Unmarshal(data, loaded))
	require.Equal(t, 0, loaded.Len())
	require.Equal(t, slotvec.Index{Slot: 0, Generation: 0}, loaded.Add(1))
}

// TestSlotVec_JSONRejectsBadInput verifies malformed keys and duplicate
// slots are rejected.
func TestSlotVec_JSONRejectsBadInput(t *testing.T) {
	loaded := slotvec.New[int]()

	err := json.Unmarshal([]byte(`{"nope":1}`), loaded)
	require.ErrorIs(t, err, slotvec.ErrMalformedIndex)

	err = json.Unmarshal([]byte(`{"0.0":1,"0.7":2}`), loaded)
	require.ErrorIs(t, err, slotvec.ErrDuplicateIndex)
}

// TestSlotVec_YAMLRoundTrip verifies the YAML surface mirrors JSON.
func TestSlotVec_YAMLRoundTrip(t *testing.T) {
	sv := slotvec.New[int]()
	a := sv.Add(10)
	b := sv.Add(20)
	sv.Remove(a)

	data, err := yaml.Marshal(sv)
	require.NoError(t, err)

	loaded := slotvec.New[int]()
	require.NoError(t, yaml.Unmarshal(data, loaded))
	require.Equal(t, 1, loaded.Len())

	got, ok := loaded.Get(b)
	require.True(t, ok)
	require.Equal(t, 20, got)
	_, ok = loaded.Get(a)
	require.False(t, ok)
}
