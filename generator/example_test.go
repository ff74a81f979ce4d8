package generator_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/pgdfgen/generator"
)

// ExampleNew sizes a small run without producing output.
func ExampleNew() {
	g, err := generator.New(
		generator.WithNodes(10),
		generator.WithPersonRatio(0.8),
		generator.WithEdges(100),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	p := g.Plan()
	fmt.Println(p.Persons, p.Organizations, p.PersonBlocks, p.OrganizationBlocks, p.EdgeCounts)
	// Output: 8 2 [4 2 2] [1 1] [40 30 30]
}

// ExampleGenerator_Generate writes both PGDF streams into memory.
func ExampleGenerator_Generate() {
	g, err := generator.New(generator.WithNodes(4), generator.WithEdges(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	var nodes, edges bytes.Buffer
	rep, err := g.Generate(&nodes, &edges)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rep.Persons, rep.Organizations, rep.Edges)
	fmt.Println(strings.SplitN(edges.String(), "\n", 2)[0])
	// Output:
	// 3 1 3
	// @id|@label|@dir|@out|@in
}
