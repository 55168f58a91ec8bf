// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package sparse implements a generic, popcount-compressed sparse array
// indexed by a dense integer domain. It is the storage strategy behind
// both a vEB node's cluster table and a compact container's leaf table:
// most slots in a wide cluster/leaf domain are empty, so the occupied
// slots are packed into a dense slice and located with a bitset rank.
package sparse

import "github.com/bits-and-blooms/bitset"

// Array holds payload T at a subset of indexes in [0, n), where n is
// whatever the caller's bitset grows to accommodate. Zero value is ready
// to use.
type Array[T any] struct {
	idx   *bitset.BitSet
	items []T
}

// rank0 maps a bitset index to its slice index, assuming the bit is set.
func (a *Array[T]) rank0(i uint) int {
	return int(a.idx.Rank(i)) - 1
}

// Test reports whether index i is occupied.
func (a *Array[T]) Test(i uint) bool {
	return a.idx != nil && a.idx.Test(i)
}

// Get returns the value at i and whether it was present.
func (a *Array[T]) Get(i uint) (value T, ok bool) {
	if a.Test(i) {
		return a.items[a.rank0(i)], true
	}
	return value, false
}

// MustGet returns the value at i. Only call after a successful Test/Get,
// undefined otherwise.
func (a *Array[T]) MustGet(i uint) T {
	return a.items[a.rank0(i)]
}

// Len reports how many slots are occupied.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// InsertAt sets the value at i, overwriting any existing value. Reports
// whether i was already occupied.
func (a *Array[T]) InsertAt(i uint, value T) (existed bool) {
	if a.Test(i) {
		a.items[a.rank0(i)] = value
		return true
	}

	if a.idx == nil {
		a.idx = bitset.New(0)
	}
	a.idx.Set(i)
	a.insertItem(a.rank0(i), value)
	return false
}

// DeleteAt removes the value at i, if present.
func (a *Array[T]) DeleteAt(i uint) (value T, existed bool) {
	if !a.Test(i) {
		return value, false
	}

	rnk := a.rank0(i)
	value = a.items[rnk]

	a.deleteItem(rnk)
	a.idx.Clear(i)

	return value, true
}

func (a *Array[T]) insertItem(i int, item T) {
	var zero T
	a.items = append(a.items, zero)
	copy(a.items[i+1:], a.items[i:])
	a.items[i] = item
}

func (a *Array[T]) deleteItem(i int) {
	var zero T
	last := len(a.items) - 1
	copy(a.items[i:], a.items[i+1:])
	a.items[last] = zero
	a.items = a.items[:last]
}
