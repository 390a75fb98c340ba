// SPDX-License-Identifier: MIT
// Package graph_test: serialization round-trips for whole graphs and for
// the compact index forms.

package graph_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gengraph/graph"
	"github.com/katalvlaran/gengraph/slotvec"
)

// buildSample returns a graph with a reused slot, a self loop and parallel
// edges, so the encoded form exercises gaps and every adjacency shape.
func buildSample(t *testing.T) (*graph.Graph[string, int], graph.VertexIndex, graph.EdgeIndex) {
	t.Helper()
	g := graph.New[string, int]()

	a, _ := g.AddVertex("a")
	scratch, _ := g.AddVertex("scratch")
	b, _ := g.AddVertex("b")
	_, _, err := g.RemoveVertex(scratch)
	require.NoError(t, err)
	c, _ := g.AddVertex("c") // reuses scratch's slot at a bumped generation

	e1, _, err := g.AddEdge(a, b, 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge(a, b, 2) // parallel
	require.NoError(t, err)
	_, _, err = g.AddEdge(c, c, 3) // self loop
	require.NoError(t, err)

	return g, c, e1
}

func TestVertexIndex_TextForms(t *testing.T) {
	ix := graph.VertexIndex{Slot: 4, Generation: 9}

	text, err := ix.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "4.9", string(text))

	var back graph.VertexIndex
	require.NoError(t, back.UnmarshalText([]byte("4.9")))
	require.Equal(t, ix, back)

	require.ErrorIs(t, back.UnmarshalText([]byte("oops")), slotvec.ErrMalformedIndex)
}

func TestGraph_JSONRoundTrip(t *testing.T) {
	g, c, _ := buildSample(t)

	data, err := json.Marshal(g)
	require.NoError(t, err)

	loaded := graph.New[string, int]()
	require.NoError(t, json.Unmarshal(data, loaded))

	require.Equal(t, snapshot(t, g), snapshot(t, loaded))
	assertConsistent(t, loaded)

	// Handles minted before the save resolve identically after the load.
	got, ok := loaded.GetVertexData(c)
	require.True(t, ok)
	require.Equal(t, "c", got)
}

// TestGraph_JSONPreservesGaps checks open slots survive the round-trip:
// the next allocation on the loaded graph lands in a gap, not at the end.
func TestGraph_JSONPreservesGaps(t *testing.T) {
	g := graph.New[string, int]()
	_, _ = g.AddVertex("a")
	hole, _ := g.AddVertex("hole")
	_, _ = g.AddVertex("b")
	_, _, err := g.RemoveVertex(hole)
	require.NoError(t, err)

	data, err := json.Marshal(g)
	require.NoError(t, err)

	loaded := graph.New[string, int]()
	require.NoError(t, json.Unmarshal(data, loaded))

	reused, _ := loaded.AddVertex("filler")
	require.Equal(t, hole.Slot, reused.Slot)
}

func TestGraph_JSONRejectsMalformedIndex(t *testing.T) {
	raw := `{"vertices":{"zero":{"out_adjacency":[],"in_adjacency":[],"data":"a"}},"edges":{}}`

	loaded := graph.New[string, int]()
	require.ErrorIs(t, json.Unmarshal([]byte(raw), loaded), slotvec.ErrMalformedIndex)
}

func TestGraph_YAMLRoundTrip(t *testing.T) {
	g, _, e1 := buildSample(t)

	data, err := yaml.Marshal(g)
	require.NoError(t, err)

	loaded := graph.New[string, int]()
	require.NoError(t, yaml.Unmarshal(data, loaded))

	require.Equal(t, snapshot(t, g), snapshot(t, loaded))
	assertConsistent(t, loaded)

	edge, ok := loaded.GetEdge(e1)
	require.True(t, ok)
	require.Equal(t, 1, edge.Data())
}

// TestGraph_DiffsSurviveRoundTrip records diffs before a save and replays
// them against the freshly loaded graph.
func TestGraph_DiffsSurviveRoundTrip(t *testing.T) {
	g, c, e1 := buildSample(t)

	data, err := json.Marshal(g)
	require.NoError(t, err)

	_, updateDiff, err := g.UpdateVertex(c, "c2")
	require.NoError(t, err)
	_, removeDiff, err := g.RemoveEdge(e1)
	require.NoError(t, err)

	loaded := graph.New[string, int]()
	require.NoError(t, json.Unmarshal(data, loaded))

	require.NoError(t, loaded.ApplyDiff(updateDiff))
	require.NoError(t, loaded.ApplyDiff(removeDiff))
	require.Equal(t, snapshot(t, g), snapshot(t, loaded))
}
