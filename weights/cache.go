package weights

import (
	"sort"
	"sync"
)

// Observer receives cache activity. All methods are called with the cache
// lock held and must not call back into the cache.
type Observer interface {
	CacheHit()
	CacheMiss()
	CacheReset(cleared int)
}

// Option configures a Cache.
type Option func(*Cache)

// WithObserver attaches an Observer. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("weights: WithObserver(nil)")
	}
	return func(c *Cache) { c.obs = o }
}

// Entry is one cached pair with its weight.
type Entry struct {
	Pair
	Weight int
}

// Cache memoizes Source output per ordered pair for its whole lifetime,
// or until Reset.
type Cache struct {
	mu      sync.Mutex
	src     Source
	entries map[Pair]int
	obs     Observer
}

// New builds a Cache over src. Panics if src is nil.
func New(src Source, opts ...Option) *Cache {
	if src == nil {
		panic("weights: New(nil source)")
	}
	c := &Cache{
		src:     src,
		entries: make(map[Pair]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WeightOf returns the weight for (from, to), generating and storing it on
// first access. Later calls return the stored value unconditionally.
func (c *Cache) WeightOf(from, to int) int {
	p := Pair{From: from, To: to}

	c.mu.Lock()
	defer c.mu.Unlock()

	if w, ok := c.entries[p]; ok {
		if c.obs != nil {
			c.obs.CacheHit()
		}
		return w
	}
	w := c.src.Weight(p)
	c.entries[p] = w
	if c.obs != nil {
		c.obs.CacheMiss()
	}
	return w
}

// Lookup returns the cached weight without generating one.
func (c *Cache) Lookup(from, to int) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.entries[Pair{From: from, To: to}]
	return w, ok
}

// Reset drops every cached entry and returns how many were dropped.
// Graphs built earlier keep their captured weights.
func (c *Cache) Reset() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[Pair]int)
	if c.obs != nil {
		c.obs.CacheReset(n)
	}
	return n
}

// Len reports the number of cached pairs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Snapshot returns all cached entries, including non-positive ones, sorted
// by From then To.
func (c *Cache) Snapshot() []Entry {
	c.mu.Lock()
	out := make([]Entry, 0, len(c.entries))
	for p, w := range c.entries {
		out = append(out, Entry{Pair: p, Weight: w})
	}
	c.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}
