// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vebtree

import "github.com/bits-and-blooms/bitset"

// bitvec is the compact container's leaf for a cluster universe wider than
// a single machine word (lo_bits > 6): a plain bit-vector over 2^lo_bits
// bits, per spec §9 ("implement the leaf as a plain bit-vector with
// ctz/clz scans"). Backed by github.com/bits-and-blooms/bitset, the same
// library the teacher's internal/bitset is a stripped-down copy of and
// that the teacher's node.go imports directly for its popcount-compressed
// prefix/child bitsets.
type bitvec struct {
	bs    *bitset.BitSet
	width uint
	count int
}

func newBitvec(width uint) *bitvec {
	return &bitvec{bs: bitset.New(0), width: width}
}

func (b *bitvec) isEmpty() bool { return b.count == 0 }

func (b *bitvec) member(k uint64) bool { return b.bs.Test(uint(k)) }

func (b *bitvec) min() (uint64, bool) {
	if b.count == 0 {
		return 0, false
	}
	i, ok := b.bs.NextSet(0)
	return uint64(i), ok
}

// max does a Rank-guided binary search for the highest set bit: Rank(i) is
// monotone non-decreasing, so the smallest index whose Rank equals the
// total count is exactly the position of the topmost set bit.
func (b *bitvec) max() (uint64, bool) {
	if b.count == 0 {
		return 0, false
	}
	lo, hi := uint64(0), (uint64(1)<<b.width)-1
	target := b.count
	for lo < hi {
		mid := lo + (hi-lo)/2
		if int(b.bs.Rank(uint(mid))) >= target {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, true
}

func (b *bitvec) successor(k uint64) (uint64, bool) {
	if b.count == 0 || k+1 >= (uint64(1)<<b.width) {
		return 0, false
	}
	i, ok := b.bs.NextSet(uint(k + 1))
	if !ok {
		return 0, false
	}
	return uint64(i), true
}

// predecessor mirrors max's binary search, bounded above by k-1.
func (b *bitvec) predecessor(k uint64) (uint64, bool) {
	if k == 0 || b.count == 0 {
		return 0, false
	}
	target := int(b.bs.Rank(uint(k - 1)))
	if target == 0 {
		return 0, false
	}
	lo, hi := uint64(0), k-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if int(b.bs.Rank(uint(mid))) >= target {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, true
}

func (b *bitvec) insert(k uint64) {
	if !b.bs.Test(uint(k)) {
		b.bs.Set(uint(k))
		b.count++
	}
}

func (b *bitvec) delete(k uint64) {
	if b.bs.Test(uint(k)) {
		b.bs.Clear(uint(k))
		b.count--
	}
}
