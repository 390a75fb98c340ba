// Package graph: serialization of handles, vertices, edges, and whole
// graphs.
//
// Handles serialize in the compact "{slot}.{generation}" form everywhere
// (JSON via encoding.TextMarshaler, YAML via yaml.Marshaler), so adjacency
// entries and edge endpoints stay human-readable. A whole Graph emits its
// two slot tables in the slotvec mapping form; reloading preserves every
// live Index and adjacency entry exactly and rebuilds both free lists, so
// handles serialized by the host stay valid against the reloaded graph.

package graph

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gengraph/slotvec"
)

// MarshalText renders the handle in compact form for JSON keys and values.
func (ix VertexIndex) MarshalText() ([]byte, error) {
	return []byte(ix.String()), nil
}

// UnmarshalText parses the compact form, rejecting malformed literals with
// an error wrapping slotvec.ErrMalformedIndex.
func (ix *VertexIndex) UnmarshalText(text []byte) error {
	parsed, err := slotvec.ParseIndex(string(text))
	if err != nil {
		return err
	}
	*ix = VertexIndex(parsed)

	return nil
}

// MarshalText renders the handle in compact form for JSON keys and values.
func (ix EdgeIndex) MarshalText() ([]byte, error) {
	return []byte(ix.String()), nil
}

// UnmarshalText parses the compact form, rejecting malformed literals with
// an error wrapping slotvec.ErrMalformedIndex.
func (ix *EdgeIndex) UnmarshalText(text []byte) error {
	parsed, err := slotvec.ParseIndex(string(text))
	if err != nil {
		return err
	}
	*ix = EdgeIndex(parsed)

	return nil
}

// MarshalYAML renders the handle in compact form (yaml.v3 does not consult
// encoding.TextMarshaler).
func (ix VertexIndex) MarshalYAML() (interface{}, error) { return ix.String(), nil }

// UnmarshalYAML parses the compact form from a YAML scalar.
func (ix *VertexIndex) UnmarshalYAML(value *yaml.Node) error {
	var literal string
	if err := value.Decode(&literal); err != nil {
		return err
	}

	return ix.UnmarshalText([]byte(literal))
}

// MarshalYAML renders the handle in compact form.
func (ix EdgeIndex) MarshalYAML() (interface{}, error) { return ix.String(), nil }

// UnmarshalYAML parses the compact form from a YAML scalar.
func (ix *EdgeIndex) UnmarshalYAML(value *yaml.Node) error {
	var literal string
	if err := value.Decode(&literal); err != nil {
		return err
	}

	return ix.UnmarshalText([]byte(literal))
}

// vertexCodec mirrors Vertex for the wire: adjacency both ways plus data.
type vertexCodec[V any] struct {
	Out  []Adjacency `json:"out_adjacency" yaml:"out_adjacency"`
	In   []Adjacency `json:"in_adjacency" yaml:"in_adjacency"`
	Data V           `json:"data" yaml:"data"`
}

// edgeCodec mirrors Edge for the wire: endpoints plus data.
type edgeCodec[E any] struct {
	From VertexIndex `json:"from" yaml:"from"`
	To   VertexIndex `json:"to" yaml:"to"`
	Data E           `json:"data" yaml:"data"`
}

// graphCodec mirrors Graph for the wire: the two slot tables.
type graphCodec[V, E any] struct {
	Vertices *slotvec.SlotVec[*Vertex[V]] `json:"vertices" yaml:"vertices"`
	Edges    *slotvec.SlotVec[*Edge[E]]   `json:"edges" yaml:"edges"`
}

// MarshalJSON emits the vertex as out/in adjacency plus payload.
func (v *Vertex[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(vertexCodec[V]{Out: v.out, In: v.in, Data: v.data})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (v *Vertex[V]) UnmarshalJSON(data []byte) error {
	var c vertexCodec[V]
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	v.out, v.in, v.data = c.Out, c.In, c.Data

	return nil
}

// MarshalYAML emits the same shape as MarshalJSON.
func (v *Vertex[V]) MarshalYAML() (interface{}, error) {
	return vertexCodec[V]{Out: v.out, In: v.in, Data: v.data}, nil
}

// UnmarshalYAML is the inverse of MarshalYAML.
func (v *Vertex[V]) UnmarshalYAML(value *yaml.Node) error {
	var c vertexCodec[V]
	if err := value.Decode(&c); err != nil {
		return err
	}
	v.out, v.in, v.data = c.Out, c.In, c.Data

	return nil
}

// MarshalJSON emits the edge as endpoints plus payload.
func (e *Edge[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(edgeCodec[E]{From: e.from, To: e.to, Data: e.data})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (e *Edge[E]) UnmarshalJSON(data []byte) error {
	var c edgeCodec[E]
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	e.from, e.to, e.data = c.From, c.To, c.Data

	return nil
}

// MarshalYAML emits the same shape as MarshalJSON.
func (e *Edge[E]) MarshalYAML() (interface{}, error) {
	return edgeCodec[E]{From: e.from, To: e.to, Data: e.data}, nil
}

// UnmarshalYAML is the inverse of MarshalYAML.
func (e *Edge[E]) UnmarshalYAML(value *yaml.Node) error {
	var c edgeCodec[E]
	if err := value.Decode(&c); err != nil {
		return err
	}
	e.from, e.to, e.data = c.From, c.To, c.Data

	return nil
}

// MarshalJSON emits both slot tables in the slotvec mapping form.
func (g *Graph[V, E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(graphCodec[V, E]{Vertices: g.vertices, Edges: g.edges})
}

// UnmarshalJSON reconstructs a graph serialized by MarshalJSON: live
// entries keep their exact slots and generations, free lists are rebuilt
// from the implicit gaps of each table.
func (g *Graph[V, E]) UnmarshalJSON(data []byte) error {
	var c graphCodec[V, E]
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	g.adopt(c)

	return nil
}

// MarshalYAML emits the same shape as MarshalJSON.
func (g *Graph[V, E]) MarshalYAML() (interface{}, error) {
	return graphCodec[V, E]{Vertices: g.vertices, Edges: g.edges}, nil
}

// UnmarshalYAML is the YAML counterpart of UnmarshalJSON.
func (g *Graph[V, E]) UnmarshalYAML(value *yaml.Node) error {
	var c graphCodec[V, E]
	if err := value.Decode(&c); err != nil {
		return err
	}
	g.adopt(c)

	return nil
}

// adopt installs decoded tables, substituting empty ones for absent keys
// so a decoded Graph is always usable.
func (g *Graph[V, E]) adopt(c graphCodec[V, E]) {
	if c.Vertices == nil {
		c.Vertices = slotvec.New[*Vertex[V]]()
	}
	if c.Edges == nil {
		c.Edges = slotvec.New[*Edge[E]]()
	}
	g.vertices, g.edges = c.Vertices, c.Edges
}
