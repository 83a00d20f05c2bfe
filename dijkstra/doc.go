// Package dijkstra provides exact single-pair shortest paths on directed,
// nonnegatively weighted multigraphs, built on an indexed min-heap with true
// decrease-key.
//
// Overview:
//
//   - ShortestPath runs the classic relax-and-extract-min loop from one
//     source toward one destination, stopping the moment the destination
//     surfaces as the queue's minimum — its distance is final at that point
//     (greedy finalization under non-negative weights), so no further work
//     is spent on farther vertices.
//   - Every vertex holds exactly one queue entry for the whole search;
//     relaxation lowers keys in place instead of pushing duplicates. This is
//     the decrease-key strategy, in contrast to lazy heaps that push
//     duplicate entries and discard stale ones on pop.
//
// Result conventions:
//
//   - Reachable destination: (total weight, path source→…→destination, nil).
//   - Unreachable destination, or source/destination absent from the graph:
//     (+Inf, nil, nil) — defined outcomes, not errors. Results are never
//     partial: a query yields a complete path or none.
//   - source == destination: (0, [source], nil), no relaxation performed.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph; a programming error.
//   - ErrQueueCorrupted:
//     Returned (wrapped, with the failing operation's context) if the vertex
//     queue rejects an operation the loop's invariants guarantee is legal.
//     Indicates a defect in the search; fatal, never retried.
//
// Negative weights never reach this package: core.AddEdge rejects them at
// graph construction time.
//
// API reference:
//
//	func ShortestPath(
//	    g *core.Graph,
//	    source, destination string,
//	) (dist float64, path []string, err error)
//
// Example usage:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("a", "c", 9)
//	_ = g.AddEdge("c", "f", 2)
//	_ = g.AddEdge("a", "f", 14)
//	dist, path, err := dijkstra.ShortestPath(g, "a", "f")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist, path) // 11 [a c f]
package dijkstra
