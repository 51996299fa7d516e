// SPDX-License-Identifier: MIT
package minpq

import (
	"fmt"
	"math"

	"github.com/google/btree"
)

// bucket holds every item currently at one priority. pos mirrors items so a
// single item can be swap-removed in O(1).
type bucket[T comparable] struct {
	priority float64
	items    []T
	pos      map[T]int
}

// TreeMap keeps priority buckets in a B-tree ordered by priority and an
// item→priority map. Within a bucket the most recently added item is
// returned first.
type TreeMap[T comparable] struct {
	tree       *btree.BTreeG[*bucket[T]]
	priorities map[T]float64
}

// NewTreeMap returns an empty TreeMap.
func NewTreeMap[T comparable](opts ...Option) *TreeMap[T] {
	cfg := buildOptions(opts)
	less := func(a, b *bucket[T]) bool { return a.priority < b.priority }

	return &TreeMap[T]{
		tree:       btree.NewG[*bucket[T]](cfg.Degree, less),
		priorities: make(map[T]float64, cfg.Capacity),
	}
}

// Add files item under priority.
// Complexity: O(log b), b = number of distinct priorities.
func (m *TreeMap[T]) Add(item T, priority float64) error {
	if math.IsNaN(priority) {
		return fmt.Errorf("%w: item %v", ErrBadPriority, item)
	}
	if _, ok := m.priorities[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	m.insert(item, priority)

	return nil
}

// Contains reports membership.
func (m *TreeMap[T]) Contains(item T) bool {
	_, ok := m.priorities[item]
	return ok
}

// PeekMin returns an item from the lowest bucket.
func (m *TreeMap[T]) PeekMin() (T, error) {
	b, ok := m.tree.Min()
	if !ok {
		var zero T
		return zero, ErrEmptyQueue
	}

	return b.items[len(b.items)-1], nil
}

// RemoveMin removes and returns an item from the lowest bucket, dropping the
// bucket once empty.
func (m *TreeMap[T]) RemoveMin() (T, error) {
	item, err := m.PeekMin()
	if err != nil {
		return item, err
	}
	m.remove(item)

	return item, nil
}

// ChangePriority moves item into the bucket for priority.
func (m *TreeMap[T]) ChangePriority(item T, priority float64) error {
	if math.IsNaN(priority) {
		return fmt.Errorf("%w: item %v", ErrBadPriority, item)
	}
	if _, ok := m.priorities[item]; !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	m.remove(item)
	m.insert(item, priority)

	return nil
}

// Size returns the number of queued items.
func (m *TreeMap[T]) Size() int { return len(m.priorities) }

// IsEmpty reports whether the map holds no items.
func (m *TreeMap[T]) IsEmpty() bool { return len(m.priorities) == 0 }

func (m *TreeMap[T]) insert(item T, priority float64) {
	b, ok := m.tree.Get(&bucket[T]{priority: priority})
	if !ok {
		b = &bucket[T]{priority: priority, pos: make(map[T]int, 1)}
		m.tree.ReplaceOrInsert(b)
	}
	b.pos[item] = len(b.items)
	b.items = append(b.items, item)
	m.priorities[item] = priority
}

func (m *TreeMap[T]) remove(item T) {
	priority := m.priorities[item]
	delete(m.priorities, item)

	b, _ := m.tree.Get(&bucket[T]{priority: priority})
	i := b.pos[item]
	last := len(b.items) - 1
	moved := b.items[last]
	b.items[i] = moved
	b.pos[moved] = i
	var zero T
	b.items[last] = zero
	b.items = b.items[:last]
	delete(b.pos, item)

	if len(b.items) == 0 {
		m.tree.Delete(b)
	}
}

var _ MinPQ[int] = (*TreeMap[int])(nil)
