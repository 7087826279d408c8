package jose

import (
	"github.com/cybergodev/jose/internal/headercache"
	"github.com/cybergodev/jose/internal/jsonval"
)

// CacheStats is a point-in-time snapshot of header cache activity.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Size   int
}

// HeaderCache maps raw encoded header segments to their parsed form with
// at-most-once-parse semantics per distinct segment. Entries are immutable
// and never evicted; the cache is safe for concurrent use by any number of
// decoders.
//
// A cache is created explicitly and handed to a Decoder, so ownership and
// lifetime are visible: create one at startup, share it as widely as the
// deployment wants header parsing deduplicated, and inject a fresh one in
// tests.
type HeaderCache struct {
	store *headercache.Store
}

// NewHeaderCache creates an empty header cache.
func NewHeaderCache() *HeaderCache {
	return &HeaderCache{store: headercache.New()}
}

// Len returns the number of distinct header segments cached.
func (c *HeaderCache) Len() int {
	return c.store.Len()
}

// Stats returns hit/miss counters and the current size.
func (c *HeaderCache) Stats() CacheStats {
	s := c.store.Stats()
	return CacheStats{Hits: s.Hits, Misses: s.Misses, Size: s.Size}
}

func (c *HeaderCache) get(segment string) (*jsonval.Obj, bool) {
	return c.store.Get(segment)
}

func (c *HeaderCache) getOrAdd(segment string, obj *jsonval.Obj) *jsonval.Obj {
	return c.store.GetOrAdd(segment, obj)
}
