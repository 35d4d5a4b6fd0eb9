package cache

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/stockroom/backend/internal/domain/exchange"
)

// RateCacheResult is a cache lookup outcome
type RateCacheResult struct {
	Table  exchange.RateTable
	Cached bool
	Hits   int
}

type rateEntry struct {
	key      string
	table    exchange.RateTable
	storedAt time.Time
	hits     int
}

// RateCache memoizes derived exchange-rate tables keyed by (base, date).
// It is an explicitly owned structure: all access goes through the mutex,
// and time is read through an injected clock so expiry is testable.
type RateCache struct {
	mu      sync.Mutex
	entries map[string]*rateEntry
	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

// NewRateCache creates a rate cache with the given TTL and size bound.
// A nil clock defaults to time.Now.
func NewRateCache(ttl time.Duration, maxSize int, clock func() time.Time) *RateCache {
	if clock == nil {
		clock = time.Now
	}
	return &RateCache{
		entries: make(map[string]*rateEntry),
		ttl:     ttl,
		maxSize: maxSize,
		now:     clock,
	}
}

// Lookup returns the rate table for (base, date), recomputing it when no
// live entry exists. A hit increments the entry's counter; a recompute
// stores the entry with hit count 1 and may first evict.
func (c *RateCache) Lookup(base, date string) RateCacheResult {
	key := cacheKey(base, date)
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && now.Sub(e.storedAt) < c.ttl {
		e.hits++
		return RateCacheResult{Table: e.table, Cached: true, Hits: e.hits}
	}

	table := exchange.DeriveTable(base, date)

	// Eviction runs only when inserting a new key would exceed the bound.
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evict(now)
	}

	c.entries[key] = &rateEntry{
		key:      key,
		table:    table,
		storedAt: now,
		hits:     1,
	}

	return RateCacheResult{Table: table, Cached: false, Hits: 1}
}

// evict removes the lowest 20% (rounded up) of entries. Candidates are
// ordered by a composite rule: when two entries' ages differ by more than
// half the TTL the older sorts first, otherwise the one with fewer hits does.
func (c *RateCache) evict(now time.Time) {
	candidates := make([]*rateEntry, 0, len(c.entries))
	for _, e := range c.entries {
		candidates = append(candidates, e)
	}

	halfTTL := c.ttl / 2
	sort.SliceStable(candidates, func(i, j int) bool {
		ageI := now.Sub(candidates[i].storedAt)
		ageJ := now.Sub(candidates[j].storedAt)
		diff := ageI - ageJ
		if diff < 0 {
			diff = -diff
		}
		if diff > halfTTL {
			return ageI > ageJ
		}
		return candidates[i].hits < candidates[j].hits
	})

	removeCount := (len(candidates) + 4) / 5 // ceil(len/5)
	for _, e := range candidates[:removeCount] {
		delete(c.entries, e.key)
	}
}

// Len returns the number of cached entries
func (c *RateCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func cacheKey(base, date string) string {
	if date == "" {
		date = "latest"
	}
	return strings.ToUpper(base) + "_" + date
}
