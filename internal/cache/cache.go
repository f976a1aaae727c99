// Package cache is a small in-process TTL cache used to memoize catalog
// query responses between product mutations.
package cache

import (
	"strings"
	"sync"
	"time"
)

const sweepInterval = 5 * time.Minute

type entry struct {
	value     interface{}
	expiresAt int64
}

// Cache is a TTL map with prefix invalidation. Safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration

	stopSweep chan struct{}
	wg        sync.WaitGroup
}

// New creates a cache with the given default TTL and starts the background
// sweep of expired entries.
func New(defaultTTL time.Duration) *Cache {
	c := &Cache{
		items:     make(map[string]entry),
		ttl:       defaultTTL,
		stopSweep: make(chan struct{}),
	}
	c.wg.Add(1)
	go c.sweepLoop()
	return c
}

func (c *Cache) sweepLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stopSweep:
			return
		}
	}
}

func (c *Cache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for key, e := range c.items {
		if now > e.expiresAt {
			delete(c.items, key)
		}
	}
}

// Set stores a value under key for the default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl).UnixNano(),
	}
}

// Get returns the value for key, if present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.items[key]
	if !ok || time.Now().UnixNano() > e.expiresAt {
		return nil, false
	}
	return e.value, true
}

// Delete removes a single key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// DeleteByPrefix removes every key starting with prefix. Product mutations
// use this to drop all memoized catalog listings at once.
func (c *Cache) DeleteByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

// Len returns the number of entries, including any not yet swept.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Close stops the background sweep and waits for it to finish.
func (c *Cache) Close() error {
	close(c.stopSweep)
	c.wg.Wait()
	return nil
}
