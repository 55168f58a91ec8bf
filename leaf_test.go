// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vebtree

import "testing"

func TestLeafEmpty(t *testing.T) {
	var l leaf

	if !l.isEmpty() {
		t.Fatal("fresh leaf should be empty")
	}
	if _, ok := l.min(); ok {
		t.Fatal("min on empty leaf should report ok=false")
	}
	if _, ok := l.max(); ok {
		t.Fatal("max on empty leaf should report ok=false")
	}
	if _, ok := l.successor(0); ok {
		t.Fatal("successor on empty leaf should report ok=false")
	}
	if _, ok := l.predecessor(0); ok {
		t.Fatal("predecessor on empty leaf should report ok=false")
	}
}

func TestLeafBasics(t *testing.T) {
	var l leaf
	for _, k := range []uint64{5, 9, 2, 14} {
		l.insert(k)
	}

	if l.isEmpty() {
		t.Fatal("leaf with members reports empty")
	}

	min, ok := l.min()
	if !ok || min != 2 {
		t.Fatalf("min = %d, %v, want 2, true", min, ok)
	}

	max, ok := l.max()
	if !ok || max != 14 {
		t.Fatalf("max = %d, %v, want 14, true", max, ok)
	}

	for _, k := range []uint64{2, 5, 9, 14} {
		if !l.member(k) {
			t.Errorf("member(%d) = false, want true", k)
		}
	}
	for _, k := range []uint64{0, 1, 3, 15, 63} {
		if l.member(k) {
			t.Errorf("member(%d) = true, want false", k)
		}
	}

	succCases := map[uint64]uint64{2: 5, 5: 9, 9: 14}
	for k, want := range succCases {
		got, ok := l.successor(k)
		if !ok || got != want {
			t.Errorf("successor(%d) = %d, %v, want %d, true", k, got, ok, want)
		}
	}
	if _, ok := l.successor(14); ok {
		t.Error("successor(14) should report ok=false, nothing is larger")
	}

	predCases := map[uint64]uint64{5: 2, 9: 5, 14: 9}
	for k, want := range predCases {
		got, ok := l.predecessor(k)
		if !ok || got != want {
			t.Errorf("predecessor(%d) = %d, %v, want %d, true", k, got, ok, want)
		}
	}
	if _, ok := l.predecessor(2); ok {
		t.Error("predecessor(2) should report ok=false, nothing is smaller")
	}

	l.delete(9)
	if l.member(9) {
		t.Error("member(9) after delete should be false")
	}
	got, ok := l.successor(5)
	if !ok || got != 14 {
		t.Errorf("successor(5) after deleting 9 = %d, %v, want 14, true", got, ok)
	}
}

func TestLeafBoundaryBits(t *testing.T) {
	var l leaf
	l.insert(0)
	l.insert(63)

	if min, ok := l.min(); !ok || min != 0 {
		t.Fatalf("min = %d, %v, want 0, true", min, ok)
	}
	if max, ok := l.max(); !ok || max != 63 {
		t.Fatalf("max = %d, %v, want 63, true", max, ok)
	}
	if _, ok := l.successor(63); ok {
		t.Error("successor(63) should report ok=false")
	}
	if _, ok := l.predecessor(0); ok {
		t.Error("predecessor(0) should report ok=false")
	}
}
