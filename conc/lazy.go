package conc

import (
	"sync"
	"sync/atomic"
)

// Item 71: use lazy initialization judiciously.
//
// Eager initialization is the default: a package-level var is initialized
// once, before main, with no synchronization questions. When the value is
// expensive and often unused, sync.Once is the whole story; the
// check-then-assign version is a race even when the computed value is
// deterministic.

// buildCount makes initialization observable in demos and tests.
var buildCount atomic.Int64

func buildRoutingTable() map[string]string {
	buildCount.Add(1)
	return map[string]string{"eu": "fra-1", "us": "iad-2", "ap": "sin-1"}
}

// racyTable lazy-initializes with check-then-assign - DON'T DO THIS. Two
// goroutines can both see nil and both build; worse, a reader can observe
// a partially published map.
type racyTable struct {
	table map[string]string
}

func (r *racyTable) lookup(region string) string {
	if r.table == nil {
		r.table = buildRoutingTable()
	}
	return r.table[region]
}

// RoutingTable lazy-initializes with sync.Once: exactly one build, and
// every caller observes the fully published value.
type RoutingTable struct {
	once  sync.Once
	table map[string]string
}

// Lookup resolves a region, building the table on first use.
func (r *RoutingTable) Lookup(region string) string {
	r.once.Do(func() {
		r.table = buildRoutingTable()
	})
	return r.table[region]
}

// eagerTable is the default answer: initialized before main, no
// synchronization to reason about.
var eagerTable = map[string]string{"eu": "fra-1", "us": "iad-2", "ap": "sin-1"}

// EagerLookup resolves against the eagerly built table.
func EagerLookup(region string) string { return eagerTable[region] }
