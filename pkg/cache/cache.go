// Package cache holds fetched tide documents so serve mode does not re-scrape
// the upstream site on every request.
package cache

import (
	"sync"
	"time"
)

// Timed is a cache that invalidates elements on a timer basis.
type Timed struct {
	ttl time.Duration

	mu    sync.Mutex
	cache map[string]element
}

// element holds a timestamped document to save.
type element struct {
	doc      string
	creation time.Time
}

// NewTimed creates a new Timed cache where elements are invalidated once they
// have been cached longer than ttl.
func NewTimed(ttl time.Duration) *Timed {
	return &Timed{
		ttl:   ttl,
		cache: make(map[string]element),
	}
}

// Set assigns a document to a key.
func (c *Timed) Set(key, doc string) {
	c.set(key, doc, time.Now())
}

// set performs Set's work with the wall clock factored out.
func (c *Timed) set(key, doc string, t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = element{
		doc:      doc,
		creation: t,
	}
}

// Get retrieves the document for a key. The document may not exist or may
// have expired, in which case ok is false.
func (c *Timed) Get(key string) (doc string, ok bool) {
	return c.get(key, time.Now())
}

// get is like set in that the time is factored out.
func (c *Timed) get(key string, t time.Time) (doc string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.cache[key]
	if !ok {
		return "", false
	}

	// in memory elements might still be invalid
	if elapsed := t.Sub(el.creation); elapsed > c.ttl {
		delete(c.cache, key)
		return "", false
	}

	return el.doc, true
}
