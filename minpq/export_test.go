// SPDX-License-Identifier: MIT
package minpq

import "fmt"

// CheckArrayHeap verifies heap order and index/slice lock-step of h.
func CheckArrayHeap[T comparable](h *ArrayHeap[T]) error {
	if h.index.Count() != len(h.nodes) {
		return fmt.Errorf("index holds %d items, heap holds %d", h.index.Count(), len(h.nodes))
	}
	for i, n := range h.nodes {
		slot, ok := h.index.Get(n.Item())
		if !ok || slot != i {
			return fmt.Errorf("item %v at slot %d indexed at %d (present=%v)", n.Item(), i, slot, ok)
		}
		if i > 0 && h.nodes[(i-1)/2].Priority() > n.Priority() {
			return fmt.Errorf("heap order broken at slot %d", i)
		}
	}

	return nil
}

// TreeMapBuckets returns the number of distinct priorities held by m.
func TreeMapBuckets[T comparable](m *TreeMap[T]) int {
	return m.tree.Len()
}
