package core_test

import (
	"fmt"

	"github.com/katalvlaran/pgdfgen/core"
)

// ExampleGraph builds a two-person graph and lists a neighborhood.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddVertex(core.Vertex{ID: "P1", Label: "Person", Props: map[string]string{"name": "Ana"}})
	_ = g.AddVertex(core.Vertex{ID: "P2", Label: "Person"})
	_ = g.AddEdge(core.Edge{ID: "E1", Label: "Knows", From: "P1", To: "P2", Directed: true})

	out, _ := g.OutNeighbors("P1")
	fmt.Println(out, g.VertexCount(), g.EdgeCount())
	fmt.Println(g.AddEdge(core.Edge{ID: "E2", Label: "Knows", From: "P2", To: "P2"}) != nil)
	// Output:
	// [P2] 2 1
	// true
}
