// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vebtree

import "github.com/bitworks/vebtree/internal/sparse"

// node is the recursive van Emde Boas structure over a universe of size
// 2^u: a summary child over the high bits, plus up to 2^hiBits cluster
// children over the low bits. newChild never allocates a node with u <= 6
// (those universes are leaves instead), so a node's clusters and summary
// are themselves either further nodes or leaves, never a degenerate
// single-bit node — the "base case u=1" branches spec'd for the generic
// recursion are subsumed by the leaf optimization and do not appear here.
type node struct {
	u      uint
	hiBits uint
	loBits uint

	low  optKey
	high optKey

	summary  child
	clusters sparse.Array[child]
}

// newNode allocates an empty node over a universe of width u bits. Callers
// (newChild) guarantee u > 6.
func newNode(u uint) *node {
	hi := (u + 1) / 2 // ceil(u/2)
	lo := u / 2       // floor(u/2)
	return &node{u: u, hiBits: hi, loBits: lo, low: noKey, high: noKey}
}

func (n *node) loMask() uint64 {
	return (uint64(1) << n.loBits) - 1
}

func (n *node) hiOf(k uint64) uint64 { return k >> n.loBits }
func (n *node) loOf(k uint64) uint64 { return k & n.loMask() }
func (n *node) join(i, j uint64) uint64 {
	return (i << n.loBits) | j
}

func (n *node) isEmpty() bool {
	return !n.low.isSome()
}

func (n *node) min() (uint64, bool) {
	return n.low.get()
}

func (n *node) max() (uint64, bool) {
	return n.high.get()
}

func (n *node) member(k uint64) bool {
	if n.isEmpty() {
		return false
	}
	if lowVal, _ := n.low.get(); k == lowVal {
		return true
	}
	if highVal, _ := n.high.get(); k == highVal {
		return true
	}
	c, ok := n.clusters.Get(uint(n.hiOf(k)))
	if !ok {
		return false
	}
	return c.member(n.loOf(k))
}

func (n *node) successor(k uint64) (uint64, bool) {
	if n.isEmpty() {
		return 0, false
	}
	if lowVal, ok := n.low.get(); ok && k < lowVal {
		return lowVal, true
	}

	i, j := n.hiOf(k), n.loOf(k)
	if c, ok := n.clusters.Get(uint(i)); ok {
		if cmax, ok := c.max(); ok && j < cmax {
			if s, ok := c.successor(j); ok {
				return n.join(i, s), true
			}
		}
	}

	if n.summary != nil {
		if nextI, ok := n.summary.successor(i); ok {
			c := n.clusters.MustGet(uint(nextI))
			m, _ := c.min()
			return n.join(nextI, m), true
		}
	}

	if highVal, ok := n.high.get(); ok && k < highVal {
		return highVal, true
	}
	return 0, false
}

func (n *node) predecessor(k uint64) (uint64, bool) {
	if n.isEmpty() {
		return 0, false
	}
	if highVal, ok := n.high.get(); ok && k > highVal {
		return highVal, true
	}

	i, j := n.hiOf(k), n.loOf(k)
	if c, ok := n.clusters.Get(uint(i)); ok {
		if cmin, ok := c.min(); ok && j > cmin {
			if p, ok := c.predecessor(j); ok {
				return n.join(i, p), true
			}
		}
	}

	if n.summary != nil {
		if prevI, ok := n.summary.predecessor(i); ok {
			c := n.clusters.MustGet(uint(prevI))
			m, _ := c.max()
			return n.join(prevI, m), true
		}
	}

	if lowVal, ok := n.low.get(); ok && k > lowVal {
		return lowVal, true
	}
	return 0, false
}

func (n *node) insert(k uint64) {
	if n.isEmpty() {
		n.low = some(k)
		n.high = some(k)
		return
	}

	lowVal, _ := n.low.get()
	if k < lowVal {
		k, lowVal = lowVal, k
		n.low = some(lowVal)
	}

	i, j := n.hiOf(k), n.loOf(k)
	c, ok := n.clusters.Get(uint(i))
	if !ok {
		c = newChild(n.loBits)
		n.clusters.InsertAt(uint(i), c)

		if n.summary == nil {
			n.summary = newChild(n.hiBits)
		}
		n.summary.insert(i)
	}
	c.insert(j)

	if highVal, ok := n.high.get(); !ok || k > highVal {
		n.high = some(k)
	}
}

func (n *node) delete(k uint64) {
	lowVal, _ := n.low.get()
	highVal, _ := n.high.get()

	if lowVal == highVal {
		n.low = noKey
		n.high = noKey
		return
	}

	if k == lowVal {
		summaryMin, _ := n.summary.min()
		clusterMin, _ := n.clusters.MustGet(uint(summaryMin)).min()
		k = n.join(summaryMin, clusterMin)
		n.low = some(k)
	}

	i, j := n.hiOf(k), n.loOf(k)
	c, _ := n.clusters.Get(uint(i))
	c.delete(j)

	if c.isEmpty() {
		n.clusters.DeleteAt(uint(i))
		n.summary.delete(i)

		if k == highVal {
			if maxI, ok := n.summary.max(); ok {
				m, _ := n.clusters.MustGet(uint(maxI)).max()
				n.high = some(n.join(maxI, m))
			} else {
				n.high = n.low
			}
		}
	} else if k == highVal {
		m, _ := c.max()
		n.high = some(n.join(i, m))
	}
}
