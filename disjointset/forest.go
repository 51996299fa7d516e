// SPDX-License-Identifier: MIT
package disjointset

import "fmt"

// Forest is a disjoint-set forest with path compression and union by size.
type Forest[T comparable] struct {
	pointers []int     // negative size for roots, parent slot otherwise
	slots    map[T]int // item → fixed slot
	sets     int       // number of disjoint sets
}

// NewForest returns an empty forest pre-sized for sizeHint items.
func NewForest[T comparable](sizeHint int) *Forest[T] {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Forest[T]{
		pointers: make([]int, 0, sizeHint),
		slots:    make(map[T]int, sizeHint),
	}
}

// MakeSet appends item as a root of size 1.
func (f *Forest[T]) MakeSet(item T) error {
	if _, ok := f.slots[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	f.slots[item] = len(f.pointers)
	f.pointers = append(f.pointers, -1)
	f.sets++

	return nil
}

// FindSet returns the root slot of item's set.
// Complexity: amortised O(α(n)).
func (f *Forest[T]) FindSet(item T) (int, error) {
	slot, ok := f.slots[item]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownItem, item)
	}

	return f.root(slot), nil
}

// Union merges the sets containing a and b.
//
// The smaller root is attached under the larger; on equal sizes a's root goes
// under b's. The surviving root stores the negated sum of both sizes.
func (f *Forest[T]) Union(a, b T) (bool, error) {
	ra, err := f.FindSet(a)
	if err != nil {
		return false, err
	}
	rb, err := f.FindSet(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}

	sizeA, sizeB := -f.pointers[ra], -f.pointers[rb]
	if sizeA > sizeB {
		f.pointers[rb] = ra
		f.pointers[ra] = -(sizeA + sizeB)
	} else {
		f.pointers[ra] = rb
		f.pointers[rb] = -(sizeA + sizeB)
	}
	f.sets--

	return true, nil
}

// SizeOf returns the number of items in item's set.
func (f *Forest[T]) SizeOf(item T) (int, error) {
	r, err := f.FindSet(item)
	if err != nil {
		return 0, err
	}

	return -f.pointers[r], nil
}

// Connected reports whether a and b share a set.
func (f *Forest[T]) Connected(a, b T) (bool, error) {
	ra, err := f.FindSet(a)
	if err != nil {
		return false, err
	}
	rb, err := f.FindSet(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Count returns the number of disjoint sets.
func (f *Forest[T]) Count() int { return f.sets }

// Len returns the number of tracked items.
func (f *Forest[T]) Len() int { return len(f.pointers) }

// root finds the root of slot in two passes: walk up, then point every slot
// on the path straight at the root.
func (f *Forest[T]) root(slot int) int {
	r := slot
	for f.pointers[r] >= 0 {
		r = f.pointers[r]
	}
	for f.pointers[slot] >= 0 {
		slot, f.pointers[slot] = f.pointers[slot], r
	}

	return r
}

var _ DisjointSets[int] = (*Forest[int])(nil)
