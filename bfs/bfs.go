package bfs

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/pgdfgen/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	o, err := build(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(startID) {
		return nil, errors.Wrapf(ErrStartVertexNotFound, "%q", startID)
	}

	n := g.VertexCount()
	w := newWalker(g, o, make(map[string]bool, n), n)
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Components returns the weakly connected components of g. Vertices inside
// a component appear in BFS order; components are ordered by their first
// vertex in g.Vertices() order. Direction and MaxDepth options are ignored.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	o, err := build(g, opts)
	if err != nil {
		return nil, err
	}
	o.Direction = Both
	o.MaxDepth = 0

	ids := g.Vertices()
	visited := make(map[string]bool, len(ids))
	var comps [][]string
	for _, id := range ids {
		if visited[id] {
			continue
		}
		w := newWalker(g, o, visited, 0)
		w.enqueue(id, 0, "")
		if err = w.loop(); err != nil {
			return nil, err
		}
		comps = append(comps, w.res.Order)
	}

	return comps, nil
}

func build(g *core.Graph, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newWalker(g *core.Graph, o Options, visited map[string]bool, n int) *walker {
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: visited,
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
}

// enqueue marks id visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return errors.Wrapf(err, "bfs: OnVisit at %q", item.id)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.neighbors(item.id)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "neighbors of %q", item.id), ErrNeighbors)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}
	return nil
}

// neighbors lists the hops from id in the configured direction. For Both,
// outgoing targets come first, then incoming sources.
func (w *walker) neighbors(id string) ([]string, error) {
	switch w.opts.Direction {
	case In:
		return w.graph.InNeighbors(id)
	case Both:
		out, err := w.graph.OutNeighbors(id)
		if err != nil {
			return nil, err
		}
		in, err := w.graph.InNeighbors(id)
		if err != nil {
			return nil, err
		}
		return append(out, in...), nil
	default:
		return w.graph.OutNeighbors(id)
	}
}
