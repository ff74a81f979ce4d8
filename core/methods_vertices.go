// SPDX-License-Identifier: MIT
// Package: pgdfgen/core
//
// methods_vertices.go — vertex lifecycle and lookups.

package core

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// AddVertex inserts v. The Props map is copied.
// Returns ErrEmptyID or ErrDuplicateID.
// Complexity: O(|Props|).
func (g *Graph) AddVertex(v Vertex) error {
	if v.ID == "" {
		return ErrEmptyID
	}
	props := make(map[string]string, len(v.Props))
	for k, val := range v.Props {
		props[k] = val
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[v.ID]; exists {
		return errors.Wrapf(ErrDuplicateID, "AddVertex: %s", v.ID)
	}
	g.vertices[v.ID] = &Vertex{ID: v.ID, Label: v.Label, Props: props}

	return nil
}

// HasVertex reports whether id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given id.
// Complexity: O(|Props|).
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "Vertex: %s", id)
	}
	cp := &Vertex{ID: v.ID, Label: v.Label, Props: make(map[string]string, len(v.Props))}
	for k, val := range v.Props {
		cp.Props[k] = val
	}

	return cp, nil
}

// Vertices returns every vertex id, sorted.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	return g.vertexIDs(func(*Vertex) bool { return true })
}

// VerticesByLabel returns the ids of vertices carrying label, sorted.
// Complexity: O(V·log V).
func (g *Graph) VerticesByLabel(label string) []string {
	return g.vertexIDs(func(v *Vertex) bool { return v.Label == label })
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

func (g *Graph) vertexIDs(keep func(*Vertex) bool) []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id, v := range g.vertices {
		if keep(v) {
			ids = append(ids, id)
		}
	}
	g.muVert.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return lessNatural(ids[i], ids[j]) })

	return ids
}
