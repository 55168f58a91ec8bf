// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vebtree

// optKey is a tagged-optional key: a plain uint64 with a reserved sentinel
// standing in for "absent". Keys are bounded to [0, 2^32) by New, so the
// all-ones sentinel can never collide with a real key and every hot-path
// comparison (low/high tests in node.go, compact.go) is a single integer
// compare instead of a pointer-nil check or a parallel bool field.
type optKey uint64

// noKey is the sentinel for "no key present".
const noKey = ^optKey(0)

// some wraps a concrete key.
func some(k uint64) optKey { return optKey(k) }

// isSome reports whether the optional key holds a value.
func (o optKey) isSome() bool { return o != noKey }

// get returns the underlying key and whether it was present.
func (o optKey) get() (uint64, bool) {
	if o == noKey {
		return 0, false
	}
	return uint64(o), true
}
