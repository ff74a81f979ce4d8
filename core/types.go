// SPDX-License-Identifier: MIT
// Package: pgdfgen/core
//
// types.go — Vertex, Edge, Graph, GraphOption, sentinel errors, NewGraph.

package core

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyID indicates an empty vertex or edge id.
	ErrEmptyID = errors.New("core: empty id")

	// ErrDuplicateID indicates a vertex or edge id that already exists.
	ErrDuplicateID = errors.New("core: duplicate id")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a labelled node with string properties.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Label is the entity kind ("Person", "Organization").
	Label string

	// Props maps column name → value. Owned by the Graph after AddVertex.
	Props map[string]string
}

// Edge is a labelled relationship between two existing vertices.
type Edge struct {
	ID       string
	Label    string
	From     string
	To       string
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory property graph.
//
// muVert protects vertices; muEdgeAdj protects edges, out and in.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowMulti bool
	allowLoops bool

	vertices map[string]*Vertex
	edges    map[string]*Edge

	// out[from][to][edgeID] and in[to][from][edgeID]
	out map[string]map[string]map[string]struct{}
	in  map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default loops and multi-edges are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string]map[string]map[string]struct{}),
		in:       make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
