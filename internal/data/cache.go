package data

import (
	"context"
	"sync"
	"time"

	"blog-apps/internal/sailor"

	"github.com/google/uuid"
)

// CacheEntry is one cached simulation.
type CacheEntry struct {
	Result    *sailor.Result
	ExpiresAt time.Time
}

// ResultCache keeps simulation results in memory so their per-walk ledgers can be
// fetched after the run. Entries expire after ttl.
type ResultCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
	now   func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewResultCache starts a cache with a background sweeper running every interval.
// Call Close to stop it.
func NewResultCache(ttl, interval time.Duration) *ResultCache {
	ctx, cancel := context.WithCancel(context.Background())
	c := &ResultCache{
		store:  make(map[string]*CacheEntry),
		ttl:    ttl,
		now:    time.Now,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go c.cleanup(ctx, interval)
	return c
}

// Put stores res under a new ID and returns it.
func (c *ResultCache) Put(res *sailor.Result) string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[id] = &CacheEntry{
		Result:    res,
		ExpiresAt: c.now().Add(c.ttl),
	}
	return id
}

// Get retrieves a cached result if present and not expired.
func (c *ResultCache) Get(id string) (*sailor.Result, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[id]
	if !exists || c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Result, true
}

// Len counts stored entries, including expired ones not yet swept.
func (c *ResultCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Close stops the sweeper and waits for it to exit.
func (c *ResultCache) Close() {
	c.cancel()
	<-c.done
}

func (c *ResultCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
		}
	}
}

func (c *ResultCache) cleanup(ctx context.Context, interval time.Duration) {
	defer close(c.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}
