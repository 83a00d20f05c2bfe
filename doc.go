// Package pathfind is an in-memory toolkit for exact single-pair shortest
// paths on nonnegatively weighted directed multigraphs.
//
// 🚀 What is pathfind?
//
//	A small, thread-safe-by-construction, near-zero-dependency library built
//	around one algorithmic core:
//		• indexedheap/ — a min-priority queue with true decrease-key: every
//		  live item can be located and re-weighted in O(log n), no duplicate
//		  entries, no stale-entry skipping
//		• core/       — a directed, weighted multigraph (self-loops and
//		  parallel edges welcome) with validate-then-mutate construction
//		• dijkstra/   — the relax-and-extract-min search with early exit and
//		  predecessor-based path reconstruction
//
// ✨ Why choose pathfind?
//
//   - Exact – Dijkstra with a real indexed heap, not lazy duplicate pushes
//   - Predictable – unreachable and unknown-vertex queries are defined
//     outcomes (+Inf, no path), never errors
//   - Rock-solid guarantees – negative weights rejected at construction,
//     heap/index consistency maintained on every swap
//   - Pure Go – no cgo, a single test-only dependency
//
// Quick ASCII example:
//
//	    a ──9── c
//	     \      │
//	      14    2
//	       \    │
//	        ─── f
//
//	shortest a→f is a→c→f with total weight 11, not the direct a→f edge.
//
// Dive into each package's doc.go for contracts, complexities and examples.
//
//	go get github.com/katalvlaran/pathfind
package pathfind
