// Package dijkstra defines the result conventions and sentinel errors for
// the single-pair shortest-path search.
//
// Result conventions:
//
//   - A reachable destination yields (total weight, full path source→…→destination, nil).
//   - An unreachable destination — including source or destination IDs that
//     are absent from the graph — yields (+Inf, nil path, nil error). These
//     are defined outcomes of the query, not failures.
//   - source == destination (present in the graph) yields (0, [source], nil).
//
// Errors (sentinel):
//
//	ErrNilGraph       - a nil *core.Graph was passed; programming error.
//	ErrQueueCorrupted - the vertex queue violated its contract mid-search;
//	                    fatal, indicates a defect, never retried.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the shortest-path search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrQueueCorrupted indicates the vertex priority queue rejected an
	// operation the search's own invariants guarantee to be legal (empty pop,
	// re-weight of an absent vertex). It signals a defect in the search loop
	// and is returned wrapped with the failing operation's context.
	ErrQueueCorrupted = errors.New("dijkstra: vertex queue contract violated")
)

// Unreachable is the distance reported when no path exists: positive
// infinity, which compares greater than every finite path weight and equals
// only itself.
func Unreachable() float64 { return math.Inf(1) }
