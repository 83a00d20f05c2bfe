// Package dijkstra_test provides runnable examples for the single-pair
// search. Each example is runnable via “go test -run Example”, showing both
// code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// ExampleShortestPath demonstrates the indirect-route case: the direct a→f
// edge at 14 loses to the two-hop route a→c→f at 11.
func ExampleShortestPath() {
	// 1) Build a directed multigraph; endpoints register automatically.
	g := core.NewGraph()
	_ = g.AddEdge("a", "c", 9)
	_ = g.AddEdge("a", "f", 14)
	_ = g.AddEdge("c", "f", 2)

	// 2) Query a single source/destination pair.
	dist, path, err := dijkstra.ShortestPath(g, "a", "f")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist=%g path=%v\n", dist, path)
	// Output: dist=11 path=[a c f]
}

// ExampleShortestPath_unreachable demonstrates the defined outcome for a
// destination no path leads to: +Inf and no path, with a nil error.
func ExampleShortestPath_unreachable() {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b", 7)

	dist, path, err := dijkstra.ShortestPath(g, "b", "a")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist=%g path=%v\n", dist, path)
	// Output: dist=+Inf path=[]
}
