// Package core provides the graph model consumed by the shortest-path
// search: a directed, nonnegatively weighted multigraph with self-loops.
//
// Overview:
//
//   - Vertices are opaque string IDs; an edge is an ordered (from, to) pair
//     with a finite, non-negative float64 weight.
//   - Multigraph semantics: any number of parallel edges may connect the
//     same ordered pair, and each is relaxed independently by the search.
//   - Build-once, query-many: AddVertex/AddEdge construct the graph, after
//     which searches treat it as read-only. All storage is RWMutex-guarded,
//     so a built graph may be shared across concurrent queries.
//
// Validation:
//
//   - Edge weights are validated at insertion time. Negative weights are a
//     construction-time error (ErrNegativeWeight), never a search-time one.
//   - NaN and ±Inf weights are rejected (ErrBadWeight): +Inf is reserved as
//     the "unreachable" distance sentinel and must stay out of the edge set.
//   - A rejected AddEdge leaves the vertex and edge sets untouched.
//
// Example usage:
//
//	g := core.NewGraph()
//	if err := g.AddEdge("a", "c", 9); err != nil {
//	    log.Fatal(err)
//	}
//	_ = g.AddEdge("c", "f", 2)
//	for _, e := range g.OutEdges("a") {
//	    fmt.Printf("%s→%s costs %g\n", e.From, e.To, e.Weight)
//	}
//
// Capability flags follow the functional-option pattern: the default graph
// permits loops and multi-edges (the model the search is specified against);
// WithoutLoops and WithoutMultiEdges tighten construction for callers that
// want simple-graph guarantees.
package core
