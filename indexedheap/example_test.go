// Package indexedheap_test provides runnable examples for the indexed heap.
// Each example is runnable via “go test -run Example”, showing both code and
// expected output.
package indexedheap_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/indexedheap"
)

// ExampleHeap demonstrates the full operation set on a small heap:
// construction from unordered pairs, pop/peek, re-weighting, and the fused
// push-then-pop / pop-then-push operations.
func ExampleHeap() {
	// 1) Build from an arbitrary unordered collection; heapify is O(n).
	h, err := indexedheap.NewFromPairs([]indexedheap.Pair{
		{Weight: 1, Item: "A"},
		{Weight: 0, Item: "B"},
		{Weight: 5, Item: "C"},
		{Weight: 2, Item: "M"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) The lightest item surfaces first.
	item, _ := h.Pop()
	fmt.Println("pop:", item)

	// 3) Peek inspects without removing.
	item, _ = h.Peek()
	fmt.Println("peek:", item)

	// 4) Raise M's weight in place; it sinks toward the leaves.
	_ = h.ChangeWeight("M", 6)

	// 5) PushPop inserts W@7 and extracts the minimum in a single sift.
	item, _ = h.PushPop("W", 7)
	fmt.Println("pushpop:", item)

	// 6) PopPush replaces the minimum with R@8 without growing the heap.
	item, _ = h.PopPush("R", 8)
	fmt.Println("poppush:", item)

	// 7) Drain the remainder in weight order.
	for !h.IsEmpty() {
		item, _ = h.Pop()
		fmt.Println("drain:", item)
	}
	// Output:
	// pop: B
	// peek: A
	// pushpop: A
	// poppush: C
	// drain: M
	// drain: W
	// drain: R
}

// ExampleHeap_ChangeWeight demonstrates decrease-key: lowering a queued
// item's weight moves it to the front in O(log n), with no removal and
// re-insertion.
func ExampleHeap_ChangeWeight() {
	h := indexedheap.New()
	_ = h.Push("slow", 10)
	_ = h.Push("steady", 20)

	// "steady" overtakes "slow".
	_ = h.ChangeWeight("steady", 5)

	item, _ := h.Peek()
	fmt.Println(item)
	// Output: steady
}
