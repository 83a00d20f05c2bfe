package core

import (
	"math"
	"sort"
)

// AddVertex registers a vertex by ID. Idempotent for existing vertices.
//
// Returns ErrEmptyVertexID for an empty ID.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// AddEdge adds a directed edge from → to with the given weight, registering
// both endpoints as vertices if they are new.
//
// Validation precedes every mutation, so a rejected call leaves the graph's
// vertex and edge sets exactly as they were:
//  1. Both IDs must be non-empty (ErrEmptyVertexID).
//  2. Weight must be ≥ 0 (ErrNegativeWeight) and finite (ErrBadWeight).
//  3. from == to requires loops enabled (ErrLoopNotAllowed).
//  4. An existing from→to edge requires multi-edges enabled
//     (ErrMultiEdgeNotAllowed).
//
// Complexity: O(1) amortized; O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Input validation, all before any mutation.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Multi-edge constraint: scan the source's adjacency for a prior from→to.
	if !g.allowMulti {
		for _, e := range g.out[from] {
			if e.To == to {
				return ErrMultiEdgeNotAllowed
			}
		}
	}

	// 3) Mutate: endpoints into the catalog, edge onto the adjacency slice.
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	g.out[from] = append(g.out[from], Edge{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// HasVertex reports whether the graph contains the vertex ID.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order. The slice is owned by
// the caller. Deterministic ordering keeps downstream runs reproducible.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the total number of edges, counting each parallel edge
// separately.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// OutEdges returns a copy of the outgoing edges of id, in insertion order.
// Unknown (or edge-less) vertices yield nil. Callers may retain and iterate
// the slice without holding graph locks.
// Complexity: O(deg(id))
func (g *Graph) OutEdges(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := g.out[id]
	if len(edges) == 0 {
		return nil
	}

	cp := make([]Edge, len(edges))
	copy(cp, edges)

	return cp
}
