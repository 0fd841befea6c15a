// Package cache holds the last-known paged result snapshots keyed by
// (page, perPage) and serves them stale-while-revalidate.
package cache

import (
	"sync"
	"time"

	"github.com/userdesk-dev/userdesk/internal/client/models"
)

// Key identifies which paged result a snapshot belongs to.
type Key struct {
	Page    int
	PerPage int
}

type entry struct {
	snap      models.PagedUsers
	writtenAt time.Time
	gen       uint64
	present   bool
}

// PageCache is a thread-safe snapshot store. Snapshots are replaced
// wholesale, never mutated in place, so readers cannot observe a
// partially-updated page.
//
// Each key carries a generation counter. A fetch records the generation it
// started under and commits through CompareAndWrite; Bump advances the
// generation so responses from superseded fetches are dropped instead of
// clobbering an optimistic write.
type PageCache struct {
	mu        sync.RWMutex
	entries   map[Key]*entry
	freshness time.Duration
	now       func() time.Time
}

// New returns a cache whose snapshots stay fresh for the given window.
// After the window a Read still returns the data but reports it stale.
func New(freshness time.Duration) *PageCache {
	return &PageCache{
		entries:   make(map[Key]*entry),
		freshness: freshness,
		now:       time.Now,
	}
}

// Read returns a deep copy of the snapshot for key, whether it exists, and
// whether it is still within the freshness window.
func (c *PageCache) Read(key Key) (snap models.PagedUsers, ok bool, fresh bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !e.present {
		return models.PagedUsers{}, false, false
	}
	fresh = c.now().Sub(e.writtenAt) < c.freshness
	return e.snap.Clone(), true, fresh
}

// Write stores a deep copy of snap under key and resets its freshness clock.
func (c *PageCache) Write(key Key, snap models.PagedUsers) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.write(key, snap)
}

func (c *PageCache) write(key Key, snap models.PagedUsers) {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	e.snap = snap.Clone()
	e.writtenAt = c.now()
	e.present = true
}

// Invalidate drops the snapshot for key. The generation counter survives so
// in-flight fetches keep their supersession semantics. Other keys are
// unaffected.
func (c *PageCache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.snap = models.PagedUsers{}
		e.writtenAt = time.Time{}
		e.present = false
	}
}

// Generation returns the current generation for key. A fetch should capture
// this before going to the network and commit via CompareAndWrite.
func (c *PageCache) Generation(key Key) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.entries[key]; ok {
		return e.gen
	}
	return 0
}

// Bump supersedes any fetch in flight for key: responses captured under an
// older generation will fail their CompareAndWrite.
func (c *PageCache) Bump(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	e.gen++
}

// CompareAndWrite stores snap only if the key's generation still equals gen.
// It reports whether the write happened.
func (c *PageCache) CompareAndWrite(key Key, gen uint64, snap models.PagedUsers) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && e.gen != gen {
		return false
	}
	c.write(key, snap)
	return true
}
