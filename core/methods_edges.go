// SPDX-License-Identifier: MIT
// Package: pgdfgen/core
//
// methods_edges.go — edge lifecycle and lookups.
// Determinism: listings sort ids by natural order ("E2" < "E10").

package core

import (
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
)

// AddEdge inserts e between two existing vertices.
//
// Implementation:
//   - Stage 1: Validate ids (ErrEmptyID) and the loop policy.
//   - Stage 2: Lock muVert (read) then muEdgeAdj (write).
//   - Stage 3: Check endpoints (ErrVertexNotFound), id uniqueness
//     (ErrDuplicateID) and the multi-edge policy.
//   - Stage 4: Store the edge and index it in out/in adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) error {
	// 1) Input validation
	if e.ID == "" || e.From == "" || e.To == "" {
		return ErrEmptyID
	}
	if e.From == e.To && !g.allowLoops {
		return errors.Wrapf(ErrLoopNotAllowed, "AddEdge: %s on %s", e.ID, e.From)
	}

	// 2) Lock order: vertices then edges
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 3) Endpoints, uniqueness, multi-edge policy
	for _, end := range [2]string{e.From, e.To} {
		if _, ok := g.vertices[end]; !ok {
			return errors.Wrapf(ErrVertexNotFound, "AddEdge: %s references %s", e.ID, end)
		}
	}
	if _, dup := g.edges[e.ID]; dup {
		return errors.Wrapf(ErrDuplicateID, "AddEdge: %s", e.ID)
	}
	if !g.allowMulti && len(g.out[e.From][e.To]) > 0 {
		return errors.Wrapf(ErrMultiEdgeNotAllowed, "AddEdge: %s→%s", e.From, e.To)
	}

	// 4) Store and index
	cp := e
	g.edges[e.ID] = &cp
	link(g.out, e.From, e.To, e.ID)
	link(g.in, e.To, e.From, e.ID)

	return nil
}

// Edge returns a copy of the edge with the given id.
// Complexity: O(1).
func (g *Graph) Edge(id string) (*Edge, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, errors.Wrapf(ErrEdgeNotFound, "Edge: %s", id)
	}
	cp := *e

	return &cp, nil
}

// Edges returns copies of every edge, in natural id order.
// Complexity: O(E·log E).
func (g *Graph) Edges() []*Edge {
	return g.edgeList(func(*Edge) bool { return true })
}

// EdgesByLabel returns copies of the edges carrying label, in natural id order.
// Complexity: O(E·log E).
func (g *Graph) EdgesByLabel(label string) []*Edge {
	return g.edgeList(func(e *Edge) bool { return e.Label == label })
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// CountByLabel tallies vertices and edges per label.
// Complexity: O(V+E).
func (g *Graph) CountByLabel() (vertices, edges map[string]int) {
	vertices, edges = make(map[string]int), make(map[string]int)

	g.muVert.RLock()
	for _, v := range g.vertices {
		vertices[v.Label]++
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for _, e := range g.edges {
		edges[e.Label]++
	}
	g.muEdgeAdj.RUnlock()

	return vertices, edges
}

func (g *Graph) edgeList(keep func(*Edge) bool) []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if keep(e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool { return lessNatural(out[i].ID, out[j].ID) })

	return out
}

// link records adj[a][b][id]; callers hold muEdgeAdj.
func link(adj map[string]map[string]map[string]struct{}, a, b, id string) {
	inner, ok := adj[a]
	if !ok {
		inner = make(map[string]map[string]struct{})
		adj[a] = inner
	}
	ids, ok := inner[b]
	if !ok {
		ids = make(map[string]struct{})
		inner[b] = ids
	}
	ids[id] = struct{}{}
}

// lessNatural orders "<prefix><number>" ids by prefix, then numerically;
// anything else falls back to byte order.
func lessNatural(a, b string) bool {
	pa, na, okA := splitID(a)
	pb, nb, okB := splitID(b)
	if okA && okB {
		if pa != pb {
			return pa < pb
		}
		if na != nb {
			return na < nb
		}
	}
	return a < b
}

func splitID(id string) (string, int, bool) {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	if i == len(id) {
		return id, 0, false
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return id, 0, false
	}
	return id[:i], n, true
}
