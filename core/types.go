// Package core defines the central Graph and Edge types for nonnegatively
// weighted directed multigraphs, and provides thread-safe primitives for
// building and querying them.
//
// This file declares Edge, Graph, GraphOption, the sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrNegativeWeight      - edge weight < 0.
//	ErrBadWeight           - edge weight is NaN or infinite.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeWeight indicates that AddEdge received a negative weight.
	// Weights are validated at insertion so the search never sees one.
	ErrNegativeWeight = errors.New("core: edge weights cannot be negative")

	// ErrBadWeight indicates a NaN or infinite edge weight. The +Inf value is
	// reserved as the "unreachable" distance sentinel and is never a legal
	// edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when
	// multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an outgoing connection from one vertex to another.
//
// From and To are vertex IDs; Weight is the non-negative traversal cost.
// Parallel edges between the same ordered pair carry independent Edge values.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative, finite cost of traversing the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithoutLoops rejects self-loops (edges from a vertex to itself).
// By default loops are permitted.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// WithoutMultiEdges rejects parallel edges between the same ordered pair.
// By default multi-edges are permitted.
func WithoutMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = false }
}

// Graph is an in-memory directed, weighted multigraph.
//
// Vertices are opaque string IDs; edges are stored as per-source adjacency
// slices. The graph is append-only: built once, then treated as read-only by
// searches. mu guards all storage, so a built graph may serve concurrent
// read-only queries without external synchronization.
type Graph struct {
	mu sync.RWMutex // guards vertices, out, edgeCount

	// Configuration flags
	allowLoops bool // allow self-loops (default true)
	allowMulti bool // allow parallel edges (default true)

	// Storage
	vertices  map[string]struct{} // vertex ID → presence
	out       map[string][]Edge   // vertex ID → outgoing edges
	edgeCount int                 // total edges across all adjacency slices
}

// NewGraph creates an empty directed, weighted multigraph.
// By default self-loops and parallel edges are permitted; use WithoutLoops /
// WithoutMultiEdges to tighten.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		allowLoops: true,
		allowMulti: true,
		vertices:   make(map[string]struct{}),
		out:        make(map[string][]Edge),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
