// SPDX-License-Identifier: MIT
// Package graph_test: shared helpers for contract tests.

package graph_test

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gengraph/graph"
)

// edgeRefs counts how many adjacency entries reference one edge, split by
// direction.
type edgeRefs struct {
	out, in int
}

// assertConsistent checks the bidirectional adjacency contract over the
// whole graph: every live edge is referenced by exactly one out entry (on
// its source, naming its target) and exactly one in entry (on its target,
// naming its source), and every adjacency entry resolves to a live,
// endpoint-matching edge.
func assertConsistent[V, E any](t *testing.T, g *graph.Graph[V, E]) {
	t.Helper()

	refs := make(map[graph.EdgeIndex]edgeRefs)
	for vix, v := range g.Vertices() {
		for _, adj := range v.OutAdjacency() {
			e, ok := g.GetEdge(adj.Edge)
			require.True(t, ok, "out entry of %s references dead edge %s", vix, adj.Edge)
			require.Equal(t, vix, e.From(), "out entry of %s on an edge it does not source", vix)
			require.Equal(t, adj.Vertex, e.To(), "out entry of %s names the wrong target", vix)
			r := refs[adj.Edge]
			r.out++
			refs[adj.Edge] = r
		}
		for _, adj := range v.InAdjacency() {
			e, ok := g.GetEdge(adj.Edge)
			require.True(t, ok, "in entry of %s references dead edge %s", vix, adj.Edge)
			require.Equal(t, vix, e.To(), "in entry of %s on an edge it does not terminate", vix)
			require.Equal(t, adj.Vertex, e.From(), "in entry of %s names the wrong source", vix)
			r := refs[adj.Edge]
			r.in++
			refs[adj.Edge] = r
		}
	}

	for eix := range g.EdgeIndexes() {
		require.Equal(t, edgeRefs{out: 1, in: 1}, refs[eix],
			"edge %s must be referenced exactly once per direction", eix)
		delete(refs, eix)
	}
	require.Empty(t, refs, "adjacency entries referencing non-live edges")
}

// snapshot serializes the whole graph in a canonical form. JSON map keys
// are emitted sorted, and adjacency lists are re-sorted by edge handle:
// adjacency order is linkage history, not state (restores may relink
// entries in a different sequence), so equal states must produce
// byte-equal snapshots regardless of it.
func snapshot[V, E any](t *testing.T, g *graph.Graph[V, E]) string {
	t.Helper()
	data, err := json.Marshal(g)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	vertices, ok := doc["vertices"].(map[string]any)
	require.True(t, ok, "graph encoding must carry a vertices table")
	for _, raw := range vertices {
		v, ok := raw.(map[string]any)
		require.True(t, ok)
		sortAdjacency(t, v["out_adjacency"])
		sortAdjacency(t, v["in_adjacency"])
	}

	canonical, err := json.Marshal(doc)
	require.NoError(t, err)

	return string(canonical)
}

// sortAdjacency orders decoded adjacency entries by their edge handle.
// Handles are unique per list, so the order is total.
func sortAdjacency(t *testing.T, raw any) {
	t.Helper()
	entries, ok := raw.([]any)
	if !ok {
		return // null for an empty list
	}
	slices.SortFunc(entries, func(a, b any) int {
		ae, _ := a.(map[string]any)["edge"].(string)
		be, _ := b.(map[string]any)["edge"].(string)

		return strings.Compare(ae, be)
	})
}

// collect drains a sequence into a slice.
func collect[T any](seq func(func(T) bool)) []T {
	var out []T
	seq(func(v T) bool {
		out = append(out, v)

		return true
	})

	return out
}
