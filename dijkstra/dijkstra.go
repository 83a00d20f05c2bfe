// Package dijkstra implements single-pair shortest paths on nonnegatively
// weighted directed multigraphs, using an indexed min-heap for true
// decrease-key relaxation.
//
// The search maintains one queue entry per vertex for the whole run: every
// vertex starts queued at its tentative distance (+Inf except the source at
// 0), and each successful relaxation lowers the vertex's key in place via
// ChangeWeight. There are no duplicate heap entries and no stale-entry
// skipping on pop — each vertex is extracted exactly once, already final.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Heap construction over all V vertices is O(V).
//   - Each vertex is extracted exactly once: V pops at O(log V) each.
//   - Each edge relaxation performs at most one ChangeWeight at O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance/predecessor maps and the queue.
//   - O(E) for the adjacency consulted during relaxation.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/indexedheap"
)

// ShortestPath computes the minimum total edge weight from source to
// destination in g, and one path achieving it.
//
// Returns:
//
//   - dist: the total weight of the lightest path, or +Inf when no path
//     exists (including source/destination IDs absent from the graph).
//   - path: the vertex sequence source→…→destination achieving dist, or nil
//     when dist is +Inf. Never a partial or approximate path.
//   - err:  ErrNilGraph for a nil graph, or a wrapped ErrQueueCorrupted if
//     the vertex queue violates its contract mid-search (a defect, not a
//     recoverable condition). Unreachability is never an error.
//
// The search exits early: it stops the moment destination surfaces as the
// queue's minimum, at which point its distance is final (greedy finalization
// under non-negative weights). A source equal to the destination returns
// (0, [source]) without relaxing anything.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, source, destination string) (float64, []string, error) {
	// 1) Validate the graph pointer; nil is a programming error.
	if g == nil {
		return Unreachable(), nil, ErrNilGraph
	}

	// 2) Unknown endpoints are a defined unreachable outcome, not an error.
	if !g.HasVertex(source) || !g.HasVertex(destination) {
		return Unreachable(), nil, nil
	}

	// 3) Trivial query: shortest path from a vertex to itself is itself.
	if source == destination {
		return 0, []string{source}, nil
	}

	// 4) Set up search state and the vertex queue, then run the loop.
	r := &runner{
		g:           g,
		source:      source,
		destination: destination,
	}
	if err := r.init(); err != nil {
		return Unreachable(), nil, err
	}
	if err := r.run(); err != nil {
		return Unreachable(), nil, err
	}

	// 5) A still-infinite destination distance means no path surfaced.
	if math.IsInf(r.dist[destination], 1) {
		return Unreachable(), nil, nil
	}

	// 6) Walk predecessor links back from the destination and reverse.
	return r.dist[destination], r.path(), nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g           *core.Graph       // input graph; read-only during the search
	source      string            // start vertex ID
	destination string            // target vertex ID
	dist        map[string]float64 // vertex ID → best-known distance from source
	prev        map[string]string  // vertex ID → predecessor achieving dist
	queue       *indexedheap.Heap  // unfinalized vertices keyed by dist
}

// init seeds the distance map (+Inf everywhere except the source at 0) and
// builds the vertex queue over the whole vertex set in one O(V) heapify.
func (r *runner) init() error {
	vertices := r.g.Vertices()

	r.dist = make(map[string]float64, len(vertices))
	r.prev = make(map[string]string, len(vertices))

	pairs := make([]indexedheap.Pair, len(vertices))
	var v string
	var w float64
	for i := range vertices {
		v = vertices[i]
		w = math.Inf(1)
		if v == r.source {
			w = 0
		}
		r.dist[v] = w
		pairs[i] = indexedheap.Pair{Weight: w, Item: v}
	}

	queue, err := indexedheap.NewFromPairs(pairs)
	if err != nil {
		// Vertices() yields unique IDs, so a duplicate here is a defect.
		return fmt.Errorf("%w: building vertex queue: %v", ErrQueueCorrupted, err)
	}
	r.queue = queue

	return nil
}

// run is the relax-and-extract-min loop with early exit.
//
// Termination: the destination surfaces as the queue minimum (its distance
// is final), or the popped minimum is itself at +Inf — every vertex still
// queued is unreachable, so the destination can never improve. The queue
// holds the destination until the loop exits, so it is never popped empty;
// the Peek guard makes that explicit rather than relying on it.
func (r *runner) run() error {
	var top, v string
	var err error
	for {
		if top, err = r.queue.Peek(); err != nil {
			return fmt.Errorf("%w: peek on drained queue: %v", ErrQueueCorrupted, err)
		}
		if top == r.destination {
			return nil
		}

		if v, err = r.queue.Pop(); err != nil {
			return fmt.Errorf("%w: pop on drained queue: %v", ErrQueueCorrupted, err)
		}
		// Minimum at +Inf: nothing reachable remains.
		if math.IsInf(r.dist[v], 1) {
			return nil
		}

		if err = r.relax(v); err != nil {
			return err
		}
	}
}

// relax finalizes v and attempts to improve every neighbor through it.
// Each parallel edge is relaxed independently; only a strict improvement
// updates the maps and lowers the neighbor's queue key.
func (r *runner) relax(v string) error {
	base := r.dist[v]
	var candidate float64
	for _, e := range r.g.OutEdges(v) {
		candidate = base + e.Weight
		if candidate >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = candidate
		r.prev[e.To] = v

		// Decrease-key in place. Finalized vertices never improve (weights
		// are non-negative), so e.To is still queued whenever we get here.
		if err := r.queue.ChangeWeight(e.To, candidate); err != nil {
			return fmt.Errorf("%w: re-weighting %q: %v", ErrQueueCorrupted, e.To, err)
		}
	}

	return nil
}

// path reconstructs source→…→destination from the predecessor links.
// Called only when dist[destination] is finite.
func (r *runner) path() []string {
	out := []string{r.destination}
	for out[len(out)-1] != r.source {
		out = append(out, r.prev[out[len(out)-1]])
	}

	// Reverse in place: the walk collected destination-first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
