package alloc_test

import (
	"fmt"

	"github.com/katalvlaran/pgdfgen/alloc"
)

func ExampleSplit() {
	counts, _ := alloc.Split(100, []float64{0.4, 0.3, 0.3})
	fmt.Println(counts)

	counts, _ = alloc.Split(7, []float64{0.5, 0.3, 0.2})
	fmt.Println(counts)
	// Output:
	// [40 30 30]
	// [4 2 1]
}
