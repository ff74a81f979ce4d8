package bfs_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pgdfgen/bfs"
	"github.com/katalvlaran/pgdfgen/core"
)

// buildGraph adds every vertex named in ids, then one directed edge per pair.
func buildGraph(t *testing.T, ids []string, pairs [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithMultiEdges())
	for _, id := range ids {
		require.NoError(t, g.AddVertex(core.Vertex{ID: id, Label: "Person"}))
	}
	for i, p := range pairs {
		require.NoError(t, g.AddEdge(core.Edge{
			ID: "E" + strconv.Itoa(i+1), Label: "Knows", From: p[0], To: p[1], Directed: true,
		}))
	}
	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "P1")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := buildGraph(t, []string{"P1"}, nil)
	_, err = bfs.BFS(g, "P9")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "P1", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(g, "P1", bfs.WithDirection(bfs.Direction(7)))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Directions(t *testing.T) {
	// P1 -> P2 -> P3, P4 -> P2
	g := buildGraph(t,
		[]string{"P1", "P2", "P3", "P4"},
		[][2]string{{"P1", "P2"}, {"P2", "P3"}, {"P4", "P2"}},
	)

	tests := []struct {
		name  string
		start string
		dir   bfs.Direction
		order []string
	}{
		{"out from P1", "P1", bfs.Out, []string{"P1", "P2", "P3"}},
		{"in from P3", "P3", bfs.In, []string{"P3", "P2", "P1", "P4"}},
		{"both from P3", "P3", bfs.Both, []string{"P3", "P2", "P1", "P4"}},
		{"out from P3", "P3", bfs.Out, []string{"P3"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := bfs.BFS(g, tc.start, bfs.WithDirection(tc.dir))
			require.NoError(t, err)
			assert.Equal(t, tc.order, res.Order)
		})
	}
}

func TestBFS_DepthAndPath(t *testing.T) {
	g := buildGraph(t,
		[]string{"P1", "P2", "P3", "P4"},
		[][2]string{{"P1", "P2"}, {"P2", "P3"}, {"P3", "P4"}, {"P1", "P3"}},
	)
	res, err := bfs.BFS(g, "P1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"P1": 0, "P2": 1, "P3": 1, "P4": 2}, res.Depth)

	path, err := res.PathTo("P4")
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "P3", "P4"}, path)

	limited, err := bfs.BFS(g, "P1", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "P2", "P3"}, limited.Order)
	_, err = limited.PathTo("P4")
	assert.Error(t, err)
}

func TestBFS_FilterAndVisitHook(t *testing.T) {
	g := buildGraph(t,
		[]string{"P1", "P2", "P3"},
		[][2]string{{"P1", "P2"}, {"P1", "P3"}},
	)
	res, err := bfs.BFS(g, "P1", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "P2" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "P3"}, res.Order)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "P1", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "P2" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_Cancelled(t *testing.T) {
	g := buildGraph(t, []string{"P1", "P2"}, [][2]string{{"P1", "P2"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "P1", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := buildGraph(t,
		[]string{"P1", "P2", "P3", "P4", "P10", "O1"},
		[][2]string{{"P2", "P1"}, {"P3", "O1"}, {"P10", "O1"}},
	)
	comps, err := bfs.Components(g, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	// Persons sort before organizations in natural order; P4 is isolated.
	assert.Equal(t, [][]string{
		{"O1", "P3", "P10"},
		{"P1", "P2"},
		{"P4"},
	}, assertPartition(t, g, comps))
}

// assertPartition asserts every vertex lands in exactly one component and
// returns comps unchanged.
func assertPartition(t *testing.T, g *core.Graph, comps [][]string) [][]string {
	t.Helper()
	seen := map[string]bool{}
	for _, c := range comps {
		for _, id := range c {
			assert.False(t, seen[id], "vertex %s in two components", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, g.VertexCount())
	return comps
}

func TestComponents_Empty(t *testing.T) {
	comps, err := bfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
