// SPDX-License-Identifier: MIT
package types

import (
	"sync"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// Tally is a thread-safe set of counters keyed by K.
	Tally[K constraints.Ordered] struct {
		m      sync.Mutex
		counts map[K]int
	}
)

// NewTally instantiates a Tally.
func NewTally[K constraints.Ordered]() *Tally[K] {
	return &Tally[K]{counts: make(map[K]int)}
}

// Inc increments the counter for key.
func (t *Tally[K]) Inc(key K) {
	t.m.Lock()
	defer t.m.Unlock()
	t.counts[key]++
}

// Value returns the current value of the counter for key.
func (t *Tally[K]) Value(key K) int {
	t.m.Lock()
	defer t.m.Unlock()
	return t.counts[key]
}

// Total returns the sum of all counters.
func (t *Tally[K]) Total() (total int) {
	t.m.Lock()
	defer t.m.Unlock()

	for _, count := range t.counts {
		total += count
	}

	return
}

// Keys lists the keys with a non-zero counter, sorted.
func (t *Tally[K]) Keys() (keys []K) {
	t.m.Lock()
	keys = maps.Keys(t.counts)
	t.m.Unlock()

	slices.Sort(keys)

	return
}
