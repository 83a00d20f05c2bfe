package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
)

// buildBenchGraph creates a connected directed graph with n vertices: a
// spine V0→V1→…→V(n-1) guaranteeing reachability, plus extra random edges.
// Seeded deterministically so every run measures the same graph.
func buildBenchGraph(n, extraEdges int) *core.Graph {
	g := core.NewGraph()
	r := rand.New(rand.NewSource(42))

	for i := 1; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), 1+r.Float64()*9)
	}
	for i := 0; i < extraEdges; i++ {
		from, to := r.Intn(n), r.Intn(n)
		_ = g.AddEdge(fmt.Sprintf("V%d", from), fmt.Sprintf("V%d", to), 1+r.Float64()*99)
	}

	return g
}

// BenchmarkShortestPath_Sparse measures end-to-end queries on ~2E = 4V edges.
func BenchmarkShortestPath_Sparse(b *testing.B) {
	g := buildBenchGraph(1000, 3000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.ShortestPath(g, "V0", "V999")
	}
}

// BenchmarkShortestPath_Dense measures queries with an order of magnitude
// more parallel and cross edges, stressing ChangeWeight.
func BenchmarkShortestPath_Dense(b *testing.B) {
	g := buildBenchGraph(500, 20000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.ShortestPath(g, "V0", "V499")
	}
}
