package mst_test

import (
	"fmt"

	"github.com/katalvlaran/lvsphere/core"
	"github.com/katalvlaran/lvsphere/mst"
)

// ExampleKruskal spans a triangle by dropping its heaviest edge.
func ExampleKruskal() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	edges, total, err := mst.Kruskal(g, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range edges {
		fmt.Printf("%s-%s ", e.From, e.To)
	}
	fmt.Println(total)
	// Output:
	// A-B B-C 3
}
