// SPDX-License-Identifier: MIT
package disjointset

import "errors"

var (
	// ErrDuplicateItem indicates MakeSet was called twice for one item.
	ErrDuplicateItem = errors.New("disjointset: item already tracked")

	// ErrUnknownItem indicates an operation on an item without a set.
	ErrUnknownItem = errors.New("disjointset: unknown item")
)

// DisjointSets partitions items into disjoint sets.
type DisjointSets[T comparable] interface {
	// MakeSet creates a singleton set for item.
	MakeSet(item T) error
	// FindSet returns an identifier of item's set; two items share a set
	// iff their identifiers are equal.
	FindSet(item T) (int, error)
	// Union merges the sets of a and b, reporting false when they already
	// shared one.
	Union(a, b T) (bool, error)
}

// Factory creates an empty DisjointSets sized for about sizeHint items.
type Factory[T comparable] func(sizeHint int) DisjointSets[T]

// ForestFactory returns a Factory producing Forests.
func ForestFactory[T comparable]() Factory[T] {
	return func(sizeHint int) DisjointSets[T] { return NewForest[T](sizeHint) }
}
