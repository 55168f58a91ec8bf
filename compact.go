// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vebtree

import "github.com/bitworks/vebtree/internal/sparse"

// compact is the memory-compacted outer layout, §4.3: a vEB summary over
// the high bits, paired with a flat array of compact per-cluster leaves
// (bitboard or bit-vector) instead of node's recursive per-cluster vEB.
// This caps total memory at O(U) bits and is the recommended top-level
// variant (§1), mirroring the teacher's choice of Lite/Table as its
// memory-optimized variants over the speed-optimized Fast.
//
// Unlike node, compact does not peel the minimum out of its leaves: every
// member, including the current minimum, is stored in its leaf. low/high
// are purely a cached summary of the leaves' contents.
type compact struct {
	u      uint
	hiBits uint
	loBits uint

	low  optKey
	high optKey

	summary child
	leaves  sparse.Array[child]
}

func newCompact(u uint) *compact {
	hi := (u + 1) / 2
	lo := u / 2
	return &compact{u: u, hiBits: hi, loBits: lo, low: noKey, high: noKey}
}

// newCompactLeaf is compact's private allocator for Λ[i]: a bitboard leaf
// when it fits a machine word, else a bit-vector (§4.5, §9).
func newCompactLeaf(width uint) child {
	if width <= 6 {
		return &leaf{}
	}
	return newBitvec(width)
}

func (c *compact) loMask() uint64 { return (uint64(1) << c.loBits) - 1 }
func (c *compact) hiOf(k uint64) uint64 { return k >> c.loBits }
func (c *compact) loOf(k uint64) uint64 { return k & c.loMask() }
func (c *compact) join(i, j uint64) uint64 {
	return (i << c.loBits) | j
}

func (c *compact) isEmpty() bool { return !c.low.isSome() }
func (c *compact) min() (uint64, bool) { return c.low.get() }
func (c *compact) max() (uint64, bool) { return c.high.get() }

func (c *compact) member(k uint64) bool {
	l, ok := c.leaves.Get(uint(c.hiOf(k)))
	if !ok {
		return false
	}
	return l.member(c.loOf(k))
}

func (c *compact) successor(k uint64) (uint64, bool) {
	if c.isEmpty() {
		return 0, false
	}
	if lowVal, ok := c.low.get(); ok && k < lowVal {
		return lowVal, true
	}

	i, j := c.hiOf(k), c.loOf(k)
	if l, ok := c.leaves.Get(uint(i)); ok {
		if s, ok := l.successor(j); ok {
			return c.join(i, s), true
		}
	}

	if c.summary != nil {
		if nextI, ok := c.summary.successor(i); ok {
			l := c.leaves.MustGet(uint(nextI))
			m, _ := l.min()
			return c.join(nextI, m), true
		}
	}

	if highVal, ok := c.high.get(); ok && k < highVal {
		return highVal, true
	}
	return 0, false
}

func (c *compact) predecessor(k uint64) (uint64, bool) {
	if c.isEmpty() {
		return 0, false
	}
	if highVal, ok := c.high.get(); ok && k > highVal {
		return highVal, true
	}

	i, j := c.hiOf(k), c.loOf(k)
	if l, ok := c.leaves.Get(uint(i)); ok {
		if p, ok := l.predecessor(j); ok {
			return c.join(i, p), true
		}
	}

	if c.summary != nil {
		if prevI, ok := c.summary.predecessor(i); ok {
			l := c.leaves.MustGet(uint(prevI))
			m, _ := l.max()
			return c.join(prevI, m), true
		}
	}

	if lowVal, ok := c.low.get(); ok && k > lowVal {
		return lowVal, true
	}
	return 0, false
}

func (c *compact) insert(k uint64) {
	if c.member(k) {
		return
	}

	i, j := c.hiOf(k), c.loOf(k)
	l, ok := c.leaves.Get(uint(i))
	if !ok {
		l = newCompactLeaf(c.loBits)
		c.leaves.InsertAt(uint(i), l)

		if c.summary == nil {
			c.summary = newChild(c.hiBits)
		}
		c.summary.insert(i)
	}
	l.insert(j)

	if lowVal, ok := c.low.get(); !ok || k < lowVal {
		c.low = some(k)
	}
	if highVal, ok := c.high.get(); !ok || k > highVal {
		c.high = some(k)
	}
}

func (c *compact) delete(k uint64) {
	if !c.member(k) {
		return
	}

	lowVal, _ := c.low.get()
	highVal, _ := c.high.get()

	i, j := c.hiOf(k), c.loOf(k)
	l, _ := c.leaves.Get(uint(i))
	l.delete(j)

	if l.isEmpty() {
		c.leaves.DeleteAt(uint(i))
		c.summary.delete(i)
	}

	if k == lowVal {
		if c.summary == nil || c.summary.isEmpty() {
			c.low = noKey
		} else {
			mi, _ := c.summary.min()
			mj, _ := c.leaves.MustGet(uint(mi)).min()
			c.low = some(c.join(mi, mj))
		}
	}
	if k == highVal {
		if c.summary == nil || c.summary.isEmpty() {
			c.high = noKey
		} else {
			mi, _ := c.summary.max()
			mj, _ := c.leaves.MustGet(uint(mi)).max()
			c.high = some(c.join(mi, mj))
		}
	}
}
