// Package headercache provides the process-wide cache of parsed token
// headers, keyed by the exact raw encoded header segment. Entries are
// immutable once inserted and live for the process lifetime; there is no
// eviction.
package headercache

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/cybergodev/jose/internal/jsonval"
)

// Stats is a point-in-time snapshot of cache activity.
type Stats struct {
	Hits   uint64
	Misses uint64
	Size   int
}

// Store is a concurrency-safe insert-if-absent map from raw header segment
// text to its parsed JSON object. Races on the same key converge to a single
// value: the first writer wins and later writers adopt that entry.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*jsonval.Obj

	hits   atomic.Uint64
	misses atomic.Uint64
}

// New creates an empty header cache.
func New() *Store {
	return &Store{
		entries: make(map[string]*jsonval.Obj, 16),
	}
}

// Get returns the cached parsed header for segment, if present.
func (s *Store) Get(segment string) (*jsonval.Obj, bool) {
	s.mu.RLock()
	obj, ok := s.entries[segment]
	s.mu.RUnlock()

	if ok {
		s.hits.Inc()
	} else {
		s.misses.Inc()
	}
	return obj, ok
}

// GetOrAdd inserts obj for segment unless an entry already exists, and
// returns the entry that ended up in the cache. Callers must use the
// returned object so concurrent decoders of the same segment agree on one
// parsed header.
func (s *Store) GetOrAdd(segment string, obj *jsonval.Obj) *jsonval.Obj {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[segment]; ok {
		return existing
	}
	s.entries[segment] = obj
	return obj
}

// Len returns the number of cached headers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stats returns a snapshot of hit/miss counters and current size.
func (s *Store) Stats() Stats {
	return Stats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
		Size:   s.Len(),
	}
}
