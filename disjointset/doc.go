// SPDX-License-Identifier: MIT
// Package disjointset implements a union-find structure over arbitrary
// comparable items.
//
// Forest stores one signed int per item in a flat slice:
//
//	pointer < 0  → the slot is a root; its set has -pointer members
//	pointer >= 0 → index of the parent slot
//
// An item's slot is fixed when MakeSet is called and never moves.
//
// FindSet walks to the root and then rewrites every slot on the path to point
// at it (path compression). Union attaches the root of the smaller set under
// the root of the larger one (union by size); on equal sizes the first
// operand's root goes under the second's. Together these keep amortised cost
// per operation at O(α(n)).
//
// Errors:
//
//	ErrDuplicateItem - MakeSet on an item already tracked.
//	ErrUnknownItem   - FindSet/Union/SizeOf/Connected on an untracked item.
//
// Forest is not safe for concurrent use.
package disjointset
