// SPDX-License-Identifier: MIT
// Package: pgdfgen/core
//
// methods_adjacent.go — neighborhoods and degrees over directed edges.

package core

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// OutNeighbors returns the unique targets of id's outgoing edges, sorted.
// Complexity: O(d·log d).
func (g *Graph) OutNeighbors(id string) ([]string, error) {
	return g.neighbors(id, g.out)
}

// InNeighbors returns the unique sources of id's incoming edges, sorted.
// Complexity: O(d·log d).
func (g *Graph) InNeighbors(id string) ([]string, error) {
	return g.neighbors(id, g.in)
}

// Degree returns the number of incoming and outgoing edges of id,
// counting parallel edges separately.
// Complexity: O(distinct neighbors).
func (g *Graph) Degree(id string) (in, out int, err error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, errors.Wrapf(ErrVertexNotFound, "Degree: %s", id)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, ids := range g.in[id] {
		in += len(ids)
	}
	for _, ids := range g.out[id] {
		out += len(ids)
	}

	return in, out, nil
}

func (g *Graph) neighbors(id string, adj map[string]map[string]map[string]struct{}) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "neighbors: %s", id)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ids := make([]string, 0, len(adj[id]))
	for other := range adj[id] {
		ids = append(ids, other)
	}
	sort.Slice(ids, func(i, j int) bool { return lessNatural(ids[i], ids[j]) })

	return ids, nil
}
