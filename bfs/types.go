package bfs

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by BFS and Components.
var (
	// ErrStartVertexNotFound reports a start id missing from the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil reports a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation reports an Option with an out-of-range value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Direction selects which edges a traversal follows.
type Direction int

const (
	// Out follows edges from source to target.
	Out Direction = iota
	// In follows edges from target back to source.
	In
	// Both ignores edge direction (weak connectivity).
	Both
)

func (d Direction) String() string {
	switch d {
	case Out:
		return "out"
	case In:
		return "in"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// Option mutates Options. An invalid value is remembered and returned
// as ErrOptionViolation before any vertex is visited.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx is checked once per dequeued vertex.
	Ctx context.Context

	// Direction selects Out, In or Both. Defaults to Out.
	Direction Direction

	// OnVisit runs for every dequeued vertex; a non-nil error stops the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth bounds the hop count from the start; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor can skip a hop by returning false.
	FilterNeighbor func(curr, neighbor string) bool

	// first invalid option
	err error
}

// DefaultOptions returns Options with a background context, outgoing
// direction, no depth limit, no filtering and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Direction:      Out,
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext attaches ctx; a nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects which edges are followed.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		if d < Out || d > Both {
			o.err = errors.Wrapf(ErrOptionViolation, "unknown direction %d", int(d))
			return
		}
		o.Direction = d
	}
}

// WithOnVisit installs the visit hook; nil keeps the no-op.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search d hops from the start.
// Zero removes the limit; a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor drops the hop curr→neighbor when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the outcome of one traversal. Order lists vertices as they
// were visited, Depth holds hop counts from the start and Parent the
// predecessor of every vertex except the start.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo walks Parent links back from dest and returns the start→dest path.
// Fails when dest was never reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Newf("bfs: no path to %q", dest)
	}
	// build reversed path
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
