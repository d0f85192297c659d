package cache

import (
	"errors"
	"time"
)

// LayeredCache checks memory first, then disk
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache creates a new layered cache
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get retrieves an entry, promoting disk hits to memory
func (c *LayeredCache) Get(key string) (Entry, bool) {
	if entry, found := c.memory.Get(key); found {
		return entry, true
	}

	if entry, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, entry, 0)
		return entry, true
	}

	return Entry{}, false
}

// Set stores an entry in both layers
func (c *LayeredCache) Set(key string, entry Entry, ttl time.Duration) error {
	if err := c.memory.Set(key, entry, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, entry, ttl)
}

// Delete removes an entry from both layers
func (c *LayeredCache) Delete(key string) error {
	return errors.Join(c.memory.Delete(key), c.disk.Delete(key))
}

// Clear removes all entries from both layers
func (c *LayeredCache) Clear() error {
	return errors.Join(c.memory.Clear(), c.disk.Clear())
}
