// Package indexedheap defines the element type and sentinel errors for the
// indexed min-heap.
//
// This file declares Pair, the (weight, item) element stored in the heap,
// and the sentinel errors returned by heap operations.
//
// Errors:
//
//	ErrEmptyHeap     - Peek/Pop/PopPush called on an empty heap.
//	ErrItemNotFound  - ChangeWeight referenced an item not currently queued.
//	ErrDuplicateItem - Push (or a constructor) received an item already queued.
package indexedheap

import "errors"

// Sentinel errors for indexed heap operations.
var (
	// ErrEmptyHeap indicates that Peek, Pop or PopPush was called on an empty heap.
	// For the Dijkstra search this is a programming-contract violation: the
	// search's own termination guard must make it unreachable.
	ErrEmptyHeap = errors.New("indexedheap: heap is empty")

	// ErrItemNotFound indicates that ChangeWeight referenced an item that does
	// not currently occupy any slot.
	ErrItemNotFound = errors.New("indexedheap: item not found")

	// ErrDuplicateItem indicates an attempt to insert an item that is already
	// live in the heap. Existing items must be re-weighted via ChangeWeight;
	// two live slots for one item would corrupt the item→index invariant.
	ErrDuplicateItem = errors.New("indexedheap: item already present")
)

// Pair is a single heap element: an item identifier and its current weight.
//
// Item uniquely identifies the element within the heap; at any instant a
// given Item occupies at most one live slot.
// Weight is the priority; smaller weights surface first.
type Pair struct {
	// Weight is the priority of the element. Must be comparable with < to
	// every other weight in the heap; +Inf is a legal "not yet reached" value.
	Weight float64

	// Item is the unique identifier of the element.
	Item string
}
