// SPDX-License-Identifier: MIT
package disjointset

// Pointer returns the raw pointer stored in item's slot.
func Pointer[T comparable](f *Forest[T], item T) int {
	return f.pointers[f.slots[item]]
}

// Slot returns the fixed slot of item.
func Slot[T comparable](f *Forest[T], item T) int {
	return f.slots[item]
}
