// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vebtree

import "testing"

func TestCompactBasics(t *testing.T) {
	c := newCompact(10) // universe [0, 1024)

	members := []uint64{668, 7, 900, 1, 512, 0, 1023}
	for _, k := range members {
		c.insert(k)
	}

	if c.isEmpty() {
		t.Fatal("compact with members reports empty")
	}

	min, ok := c.min()
	if !ok || min != 0 {
		t.Fatalf("min = %d, %v, want 0, true", min, ok)
	}
	max, ok := c.max()
	if !ok || max != 1023 {
		t.Fatalf("max = %d, %v, want 1023, true", max, ok)
	}

	for _, k := range members {
		if !c.member(k) {
			t.Errorf("member(%d) = false, want true", k)
		}
	}
	for _, k := range []uint64{2, 669, 901, 1022} {
		if c.member(k) {
			t.Errorf("member(%d) = true, want false", k)
		}
	}

	got, ok := c.successor(0)
	if !ok || got != 1 {
		t.Fatalf("successor(0) = %d, %v, want 1, true", got, ok)
	}
	if _, ok := c.successor(1023); ok {
		t.Fatal("successor(1023) should report ok=false")
	}

	got, ok = c.predecessor(1023)
	if !ok || got != 900 {
		t.Fatalf("predecessor(1023) = %d, %v, want 900, true", got, ok)
	}
}

// TestCompactDoesNotPeelLow checks the defining difference from node: the
// minimum is stored in its leaf, not hoisted out, so deleting it must
// re-derive the new min/max purely from summary+leaves, not from a second
// bookkeeping slot.
func TestCompactDoesNotPeelLow(t *testing.T) {
	c := newCompact(8) // universe [0, 256)

	for _, k := range []uint64{10, 20, 30, 200} {
		c.insert(k)
	}

	if !c.member(10) {
		t.Fatal("min 10 must be a real member of its leaf, not merely cached")
	}

	c.delete(10)
	min, ok := c.min()
	if !ok || min != 20 {
		t.Fatalf("min after deleting low = %d, %v, want 20, true", min, ok)
	}

	c.delete(200)
	max, ok := c.max()
	if !ok || max != 30 {
		t.Fatalf("max after deleting high = %d, %v, want 30, true", max, ok)
	}
}

// TestCompactWideLeafUsesBitvec exercises a loBits > 6 leaf, which must be
// backed by bitvec rather than the bitboard leaf.
func TestCompactWideLeafUsesBitvec(t *testing.T) {
	c := newCompact(20) // hiBits=10, loBits=10 > 6

	keys := []uint64{0, 1, 1000, 1023, 500_000, 1<<20 - 1}
	for _, k := range keys {
		c.insert(k)
	}

	l, ok := c.leaves.Get(uint(c.hiOf(0)))
	if !ok {
		t.Fatal("expected a leaf at cluster 0")
	}
	if _, ok := l.(*bitvec); !ok {
		t.Fatalf("wide cluster leaf is %T, want *bitvec", l)
	}

	for _, k := range keys {
		if !c.member(k) {
			t.Errorf("member(%d) = false, want true", k)
		}
	}
}

// TestCompactWideLeafDeleteRecomputesMax exercises the path that recomputes
// c.high from a bitvec-backed leaf's max() after the running maximum is
// deleted: the leaf's cluster universe (loBits=10, i.e. [0,1024)) is far
// wider than a single machine word, so max() must scan the full cluster
// width, not just its low bits.
func TestCompactWideLeafDeleteRecomputesMax(t *testing.T) {
	c := newCompact(20) // hiBits=10, loBits=10 > 6

	for _, k := range []uint64{0, 500_000, 1<<20 - 1} {
		c.insert(k)
	}

	c.delete(1<<20 - 1) // delete the running max
	max, ok := c.max()
	if !ok || max != 500_000 {
		t.Fatalf("max after deleting running max = %d, %v, want 500000, true", max, ok)
	}
}

func TestCompactInsertDeleteIdempotentAtCoreLevel(t *testing.T) {
	c := newCompact(10)
	c.insert(5)
	c.insert(5) // core-level insert self-checks membership too
	if got, _ := c.min(); got != 5 {
		t.Fatalf("min = %d, want 5", got)
	}

	c.delete(5)
	c.delete(5) // likewise delete
	if !c.isEmpty() {
		t.Fatal("compact should be empty")
	}
}
