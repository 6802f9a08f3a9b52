// Package cache provides the time-bounded result cache that sits in front
// of the market data producers. Entries expire passively after a fixed TTL
// and are evicted least-recently-used beyond a capacity bound; concurrent
// misses on the same key are coalesced into a single computation.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"market-data-lab/internal/observability"
)

// Stats describes the cache's configuration and current fill.
type Stats struct {
	Size     int           `json:"size"`
	Capacity int           `json:"capacity"`
	TTL      time.Duration `json:"ttl"`
}

// Cache is a TTL+LRU memoization layer keyed by request signature.
// Values are stored as produced; entries are replaced atomically and a
// reader never observes a partially written value.
type Cache struct {
	entries  *expirable.LRU[string, any]
	group    singleflight.Group
	capacity int
	ttl      time.Duration
}

// New creates a cache bounded by capacity entries, each live for ttl.
func New(capacity int, ttl time.Duration) *Cache {
	c := &Cache{
		capacity: capacity,
		ttl:      ttl,
	}
	c.entries = expirable.NewLRU[string, any](capacity, func(string, any) {
		observability.RecordCacheEviction()
	}, ttl)
	return c
}

// GetOrCompute returns the cached value for key if present and unexpired;
// otherwise it invokes produce, stores the result, and returns it. produce
// is not called on a hit, which matters for producers with side effects:
// a hit on the snapshot producer skips its state mutation. Concurrent
// callers missing on the same key share one produce call. Errors are never
// cached. op labels the operation for metrics only.
func (c *Cache) GetOrCompute(op, key string, produce func() (any, error)) (any, error) {
	if v, ok := c.entries.Get(key); ok {
		observability.RecordCacheHit(op)
		return v, nil
	}
	observability.RecordCacheMiss(op)

	v, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have populated the entry while this one
		// waited on the flight group.
		if v, ok := c.entries.Get(key); ok {
			return v, nil
		}
		v, err := produce()
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Stats reports current size, capacity and TTL.
func (c *Cache) Stats() Stats {
	return Stats{
		Size:     c.entries.Len(),
		Capacity: c.capacity,
		TTL:      c.ttl,
	}
}
