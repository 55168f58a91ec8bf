// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package vebtree implements a van Emde Boas priority queue: a set of
// unsigned integers drawn from a fixed universe [0, 2^u), supporting
// membership, minimum, maximum, successor, predecessor, insertion and
// deletion in worst-case O(log log U) time.
//
// Set is safe for concurrent readers but not for concurrent readers
// and/or writers; external synchronization (a sync.RWMutex around Set, for
// example) is required if multiple goroutines may mutate it.
package vebtree

import (
	"fmt"
	"iter"
)

// minU is the smallest supported universe width.
const minU = 1

// maxU is the largest supported universe width. 1<<u is computed in a
// uint64 accumulator, which overflows at u=64; capping at 32 keeps every
// computation (including join(i,j) = i<<loBits|j for the widest cluster
// split) comfortably inside 64 bits with headroom to spare.
const maxU = 32

// Set is a van Emde Boas tree over the universe [0, 2^u). The zero value
// is not usable; construct one with New.
//
// A Set must not be copied after first use.
type Set struct {
	_ noCopy

	root child
	u    uint
	size int
}

// New creates a Set over the universe [0, 2^u). u must be in [1, 32].
//
// New picks the memory-compacted compact container (§4.3) as the
// top-level implementation for u > 6, the recommended variant for
// capping total memory at O(U) bits; for u <= 6 the universe fits a
// single machine word and New returns a bare bitboard leaf. Use
// NewRecursive for the plain recursive vEB node (§4.1) instead, which
// trades that memory cap for a simpler, fully-recursive structure all the
// way down.
func New(u uint) (*Set, error) {
	return newSet(u, func(u uint) child { return newCompact(u) })
}

// NewRecursive creates a Set backed by the plain recursive vEB node
// (§4.1) rather than the compact container: every cluster is itself a
// full vEB node or leaf, with no flattened bit-vector leaves. Useful when
// the O(U) bits memory cap of New's compact container is unnecessary and
// the simpler, fully-recursive structure is preferred, and as the
// reference implementation the compact container is checked against.
func NewRecursive(u uint) (*Set, error) {
	return newSet(u, func(u uint) child { return newNode(u) })
}

func newSet(u uint, newTop func(uint) child) (*Set, error) {
	if u < minU || u > maxU {
		return nil, fmt.Errorf("vebtree: universe width u=%d out of range, want %d<=u<=%d", u, minU, maxU)
	}

	var root child
	if u <= 6 {
		root = &leaf{}
	} else {
		root = newTop(u)
	}

	return &Set{root: root, u: u}, nil
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.root.isEmpty()
}

// Len returns the number of members currently stored.
func (s *Set) Len() int {
	return s.size
}

// Min returns the smallest member, or ok=false if the set is empty.
func (s *Set) Min() (key uint64, ok bool) {
	return s.root.min()
}

// Max returns the largest member, or ok=false if the set is empty.
func (s *Set) Max() (key uint64, ok bool) {
	return s.root.max()
}

// inRange reports whether k lies in the set's universe [0, 2^u). Every
// façade method rejects an out-of-range key here, before it can reach
// s.root and index a cluster slot the universe was never sized for.
func (s *Set) inRange(k uint64) bool {
	return k < uint64(1)<<s.u
}

// Member reports whether k is stored. k must be in [0, 2^u); an
// out-of-range k reports false.
func (s *Set) Member(k uint64) bool {
	if !s.inRange(k) {
		return false
	}
	return s.root.member(k)
}

// Successor returns the smallest member strictly greater than k, or
// ok=false if none exists or k is out of range.
func (s *Set) Successor(k uint64) (key uint64, ok bool) {
	if !s.inRange(k) {
		return 0, false
	}
	return s.root.successor(k)
}

// Predecessor returns the largest member strictly less than k, or
// ok=false if none exists or k is out of range.
func (s *Set) Predecessor(k uint64) (key uint64, ok bool) {
	if !s.inRange(k) {
		return 0, false
	}
	return s.root.predecessor(k)
}

// Insert adds k to the set. It is idempotent: inserting an already-present
// key is a no-op, which also keeps the core's "k is absent" precondition
// (spec §4.1) trivially satisfied. An out-of-range k is rejected and never
// reaches the core.
func (s *Set) Insert(k uint64) {
	if !s.inRange(k) || s.root.member(k) {
		return
	}
	s.root.insert(k)
	s.size++
}

// Delete removes k from the set. It is idempotent: deleting an absent key
// is a no-op, which keeps the core's "k is present" precondition (spec
// §4.1) trivially satisfied. An out-of-range k is rejected and never
// reaches the core.
func (s *Set) Delete(k uint64) {
	if !s.inRange(k) || !s.root.member(k) {
		return
	}
	s.root.delete(k)
	s.size--
}

// All returns an iterator over the set's members in ascending order,
// built from repeated Successor calls starting at Min.
func (s *Set) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		k, ok := s.root.min()
		for ok {
			if !yield(k) {
				return
			}
			k, ok = s.root.successor(k)
		}
	}
}

// noCopy may be embedded in structs that must not be copied after first
// use, so `go vet -copylocks` flags accidental copies. Copying a Set would
// alias the same tree through two independently-mutating size counters.
//
// See https://golang.org/issues/8005#issuecomment-190753527 for details.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
