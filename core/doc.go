// Package core provides a thread-safe in-memory property graph: labelled
// vertices carrying string properties, and labelled edges with explicit ids.
//
// It is the load target of the verifier, which reads PGDF files into a Graph
// and then checks the generated dataset's structural guarantees against it.
//
// Behavior:
//
//   - Vertex and edge ids are caller-supplied and unique per Graph.
//   - AddEdge requires both endpoints to exist (no implicit vertices), so a
//     dangling reference surfaces as ErrVertexNotFound.
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops) are opt-in.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); locks are always taken in that order.
//   - Listings are deterministic: ids are returned sorted.
//
// Core Methods:
//
//	AddVertex(v Vertex) error              // O(1)
//	Vertex(id) (*Vertex, error)            // O(1)
//	HasVertex(id) bool                     // O(1)
//	Vertices() []string                    // O(V·log V)
//	VerticesByLabel(label) []string        // O(V·log V)
//
//	AddEdge(e Edge) error                  // O(1)
//	Edge(id) (*Edge, error)                // O(1)
//	Edges() []*Edge                        // O(E·log E), natural id order
//	EdgesByLabel(label) []*Edge            // O(E·log E)
//
//	OutNeighbors(id) / InNeighbors(id)     // O(d·log d), unique, sorted
//	Degree(id) (in, out int, err error)    // O(distinct neighbors)
//	VertexCount() / EdgeCount()            // O(1)
//	CountByLabel() (vertices, edges map[string]int)
//
// Errors:
//
//	ErrEmptyID             – zero-length vertex or edge id
//	ErrDuplicateID         – id already present
//	ErrVertexNotFound      – missing vertex (lookup or edge endpoint)
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges are disabled
package core
