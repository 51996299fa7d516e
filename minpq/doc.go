// SPDX-License-Identifier: MIT
// Package minpq provides an extrinsic minimum-priority queue: priorities are
// supplied alongside items instead of being read from them, and may be changed
// while the item sits in the queue.
//
// Two implementations satisfy the MinPQ contract:
//
//   - ArrayHeap: a binary heap stored in a slice, with a hash index from item to
//     slot so Contains and ChangePriority are O(1) lookups followed by an
//     O(log n) sift.
//   - TreeMap: an ordered B-tree of priority buckets plus an item→priority map.
//     Every operation is O(log n); it is simpler to reason about and serves as an
//     oracle for ArrayHeap in tests.
//
// Items must be distinct. Adding an item twice returns ErrDuplicateItem;
// changing the priority of an absent item returns ErrItemNotFound; peeking or
// removing from an empty queue returns ErrEmptyQueue. NaN priorities cannot be
// ordered and are rejected with ErrBadPriority.
//
// Ties between equal priorities are broken arbitrarily; callers must not rely
// on any particular order among equal-priority items.
//
// Neither implementation is safe for concurrent use.
package minpq
