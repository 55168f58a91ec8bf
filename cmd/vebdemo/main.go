// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command vebdemo drives a synthetic insert/query/delete workload against
// a vebtree.Set and reports timings, mirroring the teacher's cmd/main.go
// benchmark driver. It is an external collaborator, not part of the core
// library (spec §1).
package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/bitworks/vebtree"
)

const (
	universeBits = 24
	workloadSize = 200_000
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	prng := rand.New(rand.NewPCG(42, 42))
	universe := uint64(1) << universeBits

	set, err := vebtree.New(universeBits)
	if err != nil {
		log.Fatalf("vebtree.New: %v", err)
	}

	keys := randomKeys(prng, universe, workloadSize)

	ts := time.Now()
	for _, k := range keys {
		set.Insert(k)
	}
	log.Printf("inserted %d keys into a 2^%d universe: %v, Len()=%d", workloadSize, universeBits, time.Since(ts), set.Len())

	ts = time.Now()
	hits := 0
	for _, k := range keys {
		if set.Member(k) {
			hits++
		}
	}
	log.Printf("re-checked %d keys: %v, hits=%d", workloadSize, time.Since(ts), hits)

	ts = time.Now()
	min, _ := set.Min()
	walked := 0
	for k, ok := min, true; ok; k, ok = set.Successor(k) {
		walked++
	}
	log.Printf("walked the set via Successor: %v, walked=%d", time.Since(ts), walked)

	ts = time.Now()
	for _, k := range keys {
		set.Delete(k)
	}
	log.Printf("deleted %d keys: %v, IsEmpty()=%v", workloadSize, time.Since(ts), set.IsEmpty())
}

func randomKeys(prng *rand.Rand, universe uint64, n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = prng.Uint64() % universe
	}
	return keys
}
