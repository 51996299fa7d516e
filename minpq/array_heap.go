// SPDX-License-Identifier: MIT
package minpq

import (
	"fmt"
	"math"

	"github.com/dolthub/swiss"
)

// ArrayHeap is a binary min-heap in a slice with an item→slot index.
//
// Invariants, restored before every exported method returns:
//
//	nodes[(i-1)/2].priority <= nodes[i].priority for every i > 0
//	index[nodes[i].item] == i                   for every i
//	index.Count() == len(nodes)
type ArrayHeap[T comparable] struct {
	nodes []PriorityNode[T]
	index *swiss.Map[T, int]
}

// NewArrayHeap returns an empty heap.
func NewArrayHeap[T comparable](opts ...Option) *ArrayHeap[T] {
	cfg := buildOptions(opts)

	return &ArrayHeap[T]{
		nodes: make([]PriorityNode[T], 0, cfg.Capacity),
		index: swiss.NewMap[T, int](uint32(cfg.Capacity)),
	}
}

// Add appends item and sifts it up. Equal priorities never swap.
// Complexity: O(log n).
func (h *ArrayHeap[T]) Add(item T, priority float64) error {
	if math.IsNaN(priority) {
		return fmt.Errorf("%w: item %v", ErrBadPriority, item)
	}
	if h.index.Has(item) {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}

	h.nodes = append(h.nodes, PriorityNode[T]{item: item, priority: priority})
	last := len(h.nodes) - 1
	h.index.Put(item, last)
	h.siftUp(last)

	return nil
}

// Contains reports membership in O(1).
func (h *ArrayHeap[T]) Contains(item T) bool {
	return h.index.Has(item)
}

// PeekMin returns the root item.
func (h *ArrayHeap[T]) PeekMin() (T, error) {
	if len(h.nodes) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return h.nodes[0].item, nil
}

// RemoveMin swaps the root with the last slot, truncates and sifts the new
// root down.
// Complexity: O(log n).
func (h *ArrayHeap[T]) RemoveMin() (T, error) {
	if len(h.nodes) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	top := h.nodes[0].item
	last := len(h.nodes) - 1
	h.swap(0, last)
	h.nodes[last] = PriorityNode[T]{} // release the item for GC
	h.nodes = h.nodes[:last]
	h.index.Delete(top)
	if last > 0 {
		h.siftDown(0)
	}

	return top, nil
}

// ChangePriority replaces item's node and restores heap order in either
// direction.
// Complexity: O(log n).
func (h *ArrayHeap[T]) ChangePriority(item T, priority float64) error {
	if math.IsNaN(priority) {
		return fmt.Errorf("%w: item %v", ErrBadPriority, item)
	}
	i, ok := h.index.Get(item)
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}

	h.nodes[i] = PriorityNode[T]{item: item, priority: priority}
	h.siftDown(i)
	h.siftUp(i)

	return nil
}

// Size returns the number of queued items.
func (h *ArrayHeap[T]) Size() int { return len(h.nodes) }

// IsEmpty reports whether the heap holds no items.
func (h *ArrayHeap[T]) IsEmpty() bool { return len(h.nodes) == 0 }

// siftUp moves slot i toward the root while it is strictly smaller than its parent.
func (h *ArrayHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.nodes[i].priority >= h.nodes[parent].priority {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves slot i toward the leaves while it is strictly greater than
// its smaller child; the left child wins ties.
func (h *ArrayHeap[T]) siftDown(i int) {
	n := len(h.nodes)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && h.nodes[right].priority < h.nodes[left].priority {
			smallest = right
		}
		if h.nodes[i].priority <= h.nodes[smallest].priority {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two slots and updates the index for both.
func (h *ArrayHeap[T]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.index.Put(h.nodes[i].item, i)
	h.index.Put(h.nodes[j].item, j)
}

var _ MinPQ[int] = (*ArrayHeap[int])(nil)
