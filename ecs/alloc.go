package ecs

import "sync/atomic"

// AllocCounter tracks archetype/column pool misses: the cold-path case where
// an insert or remove needs a signature the world has never seen before and
// must allocate a new archetype. Go cannot portably intercept the runtime
// allocator the way the original engine's counting global allocator did, so
// this counts the one allocation-heavy event that actually matters for the
// "warm archetypes, zero-alloc hot path" contract: once every
// signature a world will ever see has been visited once, PoolMisses stops
// growing and Query/Insert/Remove on existing archetypes allocate nothing
// beyond what escape analysis already attributes to boxing interface values.
type AllocCounter struct {
	misses int64
}

func (c *AllocCounter) poolMiss() { atomic.AddInt64(&c.misses, 1) }

// PoolMisses returns the number of new-archetype allocations observed so
// far. Tests warm up a world (run every signature once) and then assert
// PoolMisses stops increasing across subsequent ticks.
func (c *AllocCounter) PoolMisses() int64 { return atomic.LoadInt64(&c.misses) }

// Reset zeroes the counter. Useful between test phases ("warm up", then
// "assert zero new misses").
func (c *AllocCounter) Reset() { atomic.StoreInt64(&c.misses, 0) }
