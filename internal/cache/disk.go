package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DiskCache persists entries as JSON files, one per key
type DiskCache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewDiskCache creates a new disk cache rooted at dir ("~" is expanded)
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{
		dir: ExpandDir(dir),
		ttl: ttl,
		now: time.Now,
	}
}

type diskEntry struct {
	Entry
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves an entry; expired or unreadable files count as a miss
func (c *DiskCache) Get(key string) (Entry, bool) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, false
	}

	var entry diskEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, false
	}

	if c.now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return Entry{}, false
	}

	return entry.Entry, true
}

// Set writes an entry. The file is written beside its final name and renamed
// so concurrent readers never see a partial file.
func (c *DiskCache) Set(key string, entry Entry, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	data, err := json.Marshal(diskEntry{Entry: entry, ExpiresAt: c.now().Add(ttl)})
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(c.dir, "entry-*.tmp")
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write cache file: %w", err)
	}

	if err := os.Rename(tmp.Name(), c.path(key)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write cache file: %w", err)
	}

	return nil
}

// Delete removes an entry; a missing entry is not an error
func (c *DiskCache) Delete(key string) error {
	err := os.Remove(c.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Clear removes all cached files
func (c *DiskCache) Clear() error {
	return os.RemoveAll(c.dir)
}

func (c *DiskCache) path(key string) string {
	return filepath.Join(c.dir, key+".cache")
}
