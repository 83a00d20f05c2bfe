// Package indexedheap implements a binary min-heap with an item→index map,
// so any live element's weight can be changed in O(log n) ("decrease-key").
//
// The heap owns an array of (weight, item) pairs satisfying the usual
// min-heap ordering, plus an auxiliary map from item to its current array
// slot. Every structural mutation (swap during a sift, append, truncate on
// pop) updates the map together with the array, so the two are never
// observably out of agreement. The pair array and the map are unexported;
// only heap-discipline mutation is possible — there is deliberately no
// insert-at-index, remove-by-value or in-place sort surface, because those
// would desynchronize the index map.
package indexedheap

// Heap is an indexed binary min-heap of (weight, item) pairs.
//
// Items are unique: a given item occupies at most one live slot. The zero
// value is not usable; construct with New or NewFromPairs. Heap is not
// safe for concurrent use — each consumer (e.g. each running search) owns
// its own instance.
type Heap struct {
	// pairs is the backing array; pairs[0] is the minimum when non-empty.
	// Invariant: pairs[i].Weight <= pairs[2i+1].Weight and pairs[2i+2].Weight.
	pairs []Pair

	// index maps each live item to its slot in pairs.
	// Invariant: pairs[index[it]].Item == it for every live item it.
	index map[string]int
}

// New returns an empty indexed heap.
// Complexity: O(1)
func New() *Heap {
	return &Heap{
		pairs: nil,
		index: make(map[string]int),
	}
}

// NewFromPairs builds a heap from an arbitrary, unordered collection of
// pairs: the input is copied, indexed, then heapified bottom-up.
//
// Returns ErrDuplicateItem if two pairs carry the same Item; the heap is
// not returned in that case.
//
// Complexity: O(n) — one duplicate-detecting index scan plus linear heapify.
func NewFromPairs(pairs []Pair) (*Heap, error) {
	h := &Heap{
		pairs: make([]Pair, len(pairs)),
		index: make(map[string]int, len(pairs)),
	}
	copy(h.pairs, pairs)

	// 1) Establish the item→index map over the raw array, rejecting
	//    duplicate item identities before any heap repair runs.
	var p Pair
	for i := range h.pairs {
		p = h.pairs[i]
		if _, seen := h.index[p.Item]; seen {
			return nil, ErrDuplicateItem
		}
		h.index[p.Item] = i
	}

	// 2) Bottom-up heapify: sift every internal node down, last parent first.
	//    Each swap inside siftDown keeps the index map in step.
	for i := len(h.pairs)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h, nil
}

// Len returns the number of live elements.
// Complexity: O(1)
func (h *Heap) Len() int { return len(h.pairs) }

// IsEmpty reports whether the heap holds no elements.
// Complexity: O(1)
func (h *Heap) IsEmpty() bool { return len(h.pairs) == 0 }

// Contains reports whether item currently occupies a slot.
// Complexity: O(1) average
func (h *Heap) Contains(item string) bool {
	_, ok := h.index[item]

	return ok
}

// Weight returns the current weight of item and whether it is present.
// Complexity: O(1) average
func (h *Heap) Weight(item string) (float64, bool) {
	i, ok := h.index[item]
	if !ok {
		return 0, false
	}

	return h.pairs[i].Weight, true
}

// Peek returns the minimum-weight item without removing it.
// Returns ErrEmptyHeap if the heap is empty.
// Complexity: O(1)
func (h *Heap) Peek() (string, error) {
	if len(h.pairs) == 0 {
		return "", ErrEmptyHeap
	}

	return h.pairs[0].Item, nil
}

// Pop removes and returns the minimum-weight item.
//
// The last pair is swapped into the vacated root slot, the array is
// truncated, and the displaced pair is sifted down to restore order.
// Returns ErrEmptyHeap if the heap is empty.
//
// Complexity: O(log n)
func (h *Heap) Pop() (string, error) {
	if len(h.pairs) == 0 {
		return "", ErrEmptyHeap
	}

	// 1) Move the last pair into the root slot (no-op for a 1-element heap),
	//    then truncate the departing minimum off the end.
	min := h.pairs[0]
	last := len(h.pairs) - 1
	h.swap(0, last)
	h.pairs = h.pairs[:last]
	delete(h.index, min.Item)

	// 2) Restore heap order from the root.
	if last > 0 {
		h.siftDown(0)
	}

	return min.Item, nil
}

// Push inserts a new item with the given weight: appended at the end, then
// sifted up.
//
// Returns ErrDuplicateItem if the item is already present — callers must
// route existing items through ChangeWeight instead.
//
// Complexity: O(log n)
func (h *Heap) Push(item string, weight float64) error {
	if _, ok := h.index[item]; ok {
		return ErrDuplicateItem
	}

	h.pairs = append(h.pairs, Pair{Weight: weight, Item: item})
	h.index[item] = len(h.pairs) - 1
	h.siftUp(len(h.pairs) - 1)

	return nil
}

// PushPop is push-then-pop fused into a single sift.
//
// If the heap is empty, or the incoming weight does not exceed the current
// minimum, the incoming item is the minimum of the combined set and is
// returned without ever touching the array. Otherwise the current minimum
// is returned and the incoming pair takes its root slot, sifting down.
//
// Returns ErrDuplicateItem if item is already present. Never returns
// ErrEmptyHeap: the combined set is non-empty by construction.
//
// Complexity: O(log n)
func (h *Heap) PushPop(item string, weight float64) (string, error) {
	if _, ok := h.index[item]; ok {
		return "", ErrDuplicateItem
	}

	// The pushed pair would surface immediately; hand it straight back.
	if len(h.pairs) == 0 || weight <= h.pairs[0].Weight {
		return item, nil
	}

	min := h.pairs[0]
	h.setRoot(Pair{Weight: weight, Item: item})
	h.siftDown(0)

	return min.Item, nil
}

// PopPush removes the current minimum and installs the new (item, weight)
// pair in the vacated root slot, sifting down — replace-without-growing.
//
// Returns ErrEmptyHeap if the heap was empty before the call.
// Returns ErrDuplicateItem if item already occupies a slot other than the
// root; re-weighting the root with its own item is a legal replacement.
//
// Complexity: O(log n)
func (h *Heap) PopPush(item string, weight float64) (string, error) {
	if len(h.pairs) == 0 {
		return "", ErrEmptyHeap
	}
	if i, ok := h.index[item]; ok && i != 0 {
		return "", ErrDuplicateItem
	}

	min := h.pairs[0]
	h.setRoot(Pair{Weight: weight, Item: item})
	h.siftDown(0)

	return min.Item, nil
}

// ChangeWeight overwrites the weight of a live item and restores heap order:
// a decreased weight sifts the element toward the root, an increased weight
// sifts it toward the leaves, an unchanged weight is a no-op.
//
// Returns ErrItemNotFound if the item is not currently present.
//
// Complexity: O(log n)
func (h *Heap) ChangeWeight(item string, weight float64) error {
	i, ok := h.index[item]
	if !ok {
		return ErrItemNotFound
	}

	old := h.pairs[i].Weight
	h.pairs[i].Weight = weight
	switch {
	case weight < old:
		h.siftUp(i)
	case weight > old:
		h.siftDown(i)
	}

	return nil
}

// setRoot replaces the root pair, retiring the old root's index entry and
// registering the new pair at slot 0. Caller restores heap order.
func (h *Heap) setRoot(p Pair) {
	delete(h.index, h.pairs[0].Item)
	h.pairs[0] = p
	h.index[p.Item] = 0
}

// swap exchanges slots i and j and updates both index entries in the same
// step, so the map never disagrees with the array.
func (h *Heap) swap(i, j int) {
	if i == j {
		return
	}
	h.pairs[i], h.pairs[j] = h.pairs[j], h.pairs[i]
	h.index[h.pairs[i].Item] = i
	h.index[h.pairs[j].Item] = j
}

// siftUp moves the pair at slot i toward the root until its parent is no
// heavier than it.
func (h *Heap) siftUp(i int) {
	var parent int
	for i > 0 {
		parent = (i - 1) / 2
		if h.pairs[i].Weight >= h.pairs[parent].Weight {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves the pair at slot i toward the leaves, swapping with its
// lighter child until both children are at least as heavy.
func (h *Heap) siftDown(i int) {
	n := len(h.pairs)
	var left, right, smallest int
	for {
		left = 2*i + 1
		if left >= n {
			return
		}
		smallest = left
		right = left + 1
		if right < n && h.pairs[right].Weight < h.pairs[left].Weight {
			smallest = right
		}
		if h.pairs[smallest].Weight >= h.pairs[i].Weight {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
