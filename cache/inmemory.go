package cache

import (
	"context"
	"sync"
	"time"
)

const defaultSweepInterval = 5 * time.Minute

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

func (i memoryItem) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && now.After(i.expiresAt)
}

// InMemory is a thread-safe process-local cache with TTL expiry. Expired
// items are dropped lazily on read and swept periodically.
type InMemory struct {
	mu    sync.RWMutex
	items map[string]memoryItem

	stopSweep chan struct{}
	stopOnce  sync.Once
}

// NewInMemory creates an in-memory cache and starts its sweeper.
func NewInMemory() *InMemory {
	c := &InMemory{
		items:     make(map[string]memoryItem),
		stopSweep: make(chan struct{}),
	}

	go c.sweep(defaultSweepInterval)

	return c
}

func (c *InMemory) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			c.mu.Lock()
			for key, item := range c.items {
				if item.expired(now) {
					delete(c.items, key)
				}
			}
			c.mu.Unlock()
		case <-c.stopSweep:
			return
		}
	}
}

// Get implements RawCache.
func (c *InMemory) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	if item.expired(time.Now()) {
		// Re-check under the write lock: a concurrent Set may have stored
		// a fresh item for the key since the read above.
		c.mu.Lock()
		if current, exists := c.items[key]; exists && current.expired(time.Now()) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}

	return item.value, true, nil
}

// Set implements RawCache.
func (c *InMemory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	item := memoryItem{value: value}
	if ttl > 0 {
		item.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()

	return nil
}

// Delete implements RawCache.
func (c *InMemory) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()

	return nil
}

// Close stops the sweeper and drops all items.
func (c *InMemory) Close() error {
	c.stopOnce.Do(func() {
		close(c.stopSweep)
	})

	c.mu.Lock()
	c.items = make(map[string]memoryItem)
	c.mu.Unlock()

	return nil
}
