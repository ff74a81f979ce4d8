// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a
//     start vertex and returns a Result with Order, Depth and Parent.
//   - Direction selects which edges are followed: Out (source to target),
//     In (target back to source) or Both (weak connectivity).
//   - Components partitions every vertex into weakly connected components.
//     verify uses it to report how fragmented a generated graph is.
//
// Determinism
//
//	core.OutNeighbors and core.InNeighbors return ids in natural order
//	(P2 before P10), and BFS enqueues neighbors in that order, so the visit
//	sequence is reproducible. With Both, outgoing targets precede incoming
//	sources.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)  (neighbor lists are sorted per vertex)
//   - Memory: O(V)            (queue, Depth, Parent, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, "P1",
//	    bfs.WithContext(ctx),
//	    bfs.WithDirection(bfs.Out),
//	    bfs.WithMaxDepth(2),
//	)
//	comps, err := bfs.Components(g)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for a negative MaxDepth or unknown Direction.
//   - ErrNeighbors            if a neighbor lookup fails.
//   - Wrapped errors returned by the OnVisit hook.
package bfs
