// SPDX-License-Identifier: MIT
// Package graph_test: benchmarks for the hot mutation and replay paths.

package graph_test

import (
	"testing"

	"github.com/katalvlaran/gengraph/graph"
)

// BenchmarkAddEdge measures edge insertion on a fixed vertex set.
func BenchmarkAddEdge(b *testing.B) {
	g := graph.New[int, int]()
	vs := make([]graph.VertexIndex, 64)
	for i := range vs {
		vs[i], _ = g.AddVertex(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.AddEdge(vs[i%len(vs)], vs[(i+1)%len(vs)], i)
	}
}

// BenchmarkRemoveVertexCascade measures removal of a hub with fanout
// incident edges, the most expensive single mutation.
func BenchmarkRemoveVertexCascade(b *testing.B) {
	const fanout = 16

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := graph.New[int, int]()
		hub, _ := g.AddVertex(0)
		for j := 0; j < fanout; j++ {
			v, _ := g.AddVertex(j + 1)
			_, _, _ = g.AddEdge(hub, v, j)
		}
		b.StartTimer()

		_, _, _ = g.RemoveVertex(hub)
	}
}

// BenchmarkUndoRedo measures one full rollback/re-apply cycle of an edge
// removal.
func BenchmarkUndoRedo(b *testing.B) {
	g := graph.New[int, int]()
	a, _ := g.AddVertex(0)
	c, _ := g.AddVertex(1)
	e, _, _ := g.AddEdge(a, c, 7)
	_, diff, _ := g.RemoveEdge(e)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.RollbackDiff(diff); err != nil {
			b.Fatal(err)
		}
		if err := g.ApplyDiff(diff); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIterateEdges measures a full lazy sweep over live edges.
func BenchmarkIterateEdges(b *testing.B) {
	g := graph.New[int, int]()
	vs := make([]graph.VertexIndex, 32)
	for i := range vs {
		vs[i], _ = g.AddVertex(i)
	}
	for i := 0; i < 1024; i++ {
		_, _, _ = g.AddEdge(vs[i%len(vs)], vs[(i*7)%len(vs)], i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for _, e := range g.Edges() {
			sum += e.Data()
		}
		_ = sum
	}
}
