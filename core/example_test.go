// Package core_test provides runnable examples for graph construction.
package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// ExampleGraph_AddEdge demonstrates multigraph construction and the
// insertion-time weight validation.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()

	// Parallel edges and self-loops are welcome by default.
	_ = g.AddEdge("a", "b", 7)
	_ = g.AddEdge("a", "b", 8)
	_ = g.AddEdge("a", "a", 100)

	// Negative weights are rejected immediately and mutate nothing.
	err := g.AddEdge("a", "z", -1)
	fmt.Println("negative rejected:", errors.Is(err, core.ErrNegativeWeight))
	fmt.Println("z registered:", g.HasVertex("z"))
	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// negative rejected: true
	// z registered: false
	// vertices: [a b]
	// edges: 3
}
