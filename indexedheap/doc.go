// Package indexedheap provides a binary min-heap with in-place priority
// updates ("decrease-key") in O(log n).
//
// Overview:
//
//   - An ordinary binary heap can tell you its minimum, but cannot find an
//     arbitrary element without a linear scan. indexedheap pairs the heap
//     array with an item→slot map, so any live element can be located in
//     O(1) and re-weighted in O(log n).
//   - This is the structure that makes Dijkstra's relaxation loop efficient:
//     instead of pushing duplicate entries and skipping stale ones on pop,
//     the search lowers a vertex's key exactly where it sits.
//
// Invariants:
//
//   - Heap order: every pair's weight ≤ its children's weights.
//   - Index agreement: after any exported operation returns, the item→slot
//     map points every live item at the slot actually holding it. Swaps,
//     appends and truncations update array and map in the same step.
//   - Uniqueness: a given item occupies at most one live slot. Inserting a
//     duplicate is rejected with ErrDuplicateItem rather than silently
//     corrupting the index (existing items are re-weighted via ChangeWeight).
//
// Operations and complexity:
//
//   - New / NewFromPairs:    O(1) / O(n) (linear heapify + index scan)
//   - Len / IsEmpty /
//     Contains / Weight:     O(1)
//   - Peek:                  O(1)
//   - Pop / Push:            O(log n)
//   - PushPop / PopPush:     O(log n) — fused push-then-pop / pop-then-push,
//     one sift instead of two
//   - ChangeWeight:          O(log n) — sift-up on decrease, sift-down on
//     increase, no-op on equal
//
// Error handling (sentinel errors):
//
//   - ErrEmptyHeap:     Peek, Pop or PopPush on an empty heap.
//   - ErrItemNotFound:  ChangeWeight on an absent item.
//   - ErrDuplicateItem: Push/PushPop/NewFromPairs given an already-live item.
//
// Example usage:
//
//	h, _ := indexedheap.NewFromPairs([]indexedheap.Pair{
//	    {Weight: 1, Item: "A"},
//	    {Weight: 0, Item: "B"},
//	    {Weight: 5, Item: "C"},
//	})
//	first, _ := h.Pop()          // "B"
//	_ = h.ChangeWeight("C", 0.5) // C jumps ahead of A
//	next, _ := h.Peek()          // "C"
//	_, _ = first, next
//
// The heap is not safe for concurrent use; each consumer owns its instance.
package indexedheap
