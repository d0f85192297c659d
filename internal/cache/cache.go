// Package cache keeps fetched mission documents in memory and on disk.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is a cached document body with its fetch metadata
type Entry struct {
	URL       string    `json:"url"`
	Body      []byte    `json:"body"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Cache defines the interface for caching
type Cache interface {
	Get(key string) (Entry, bool)
	Set(key string, entry Entry, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a cache key from a document URL
func CacheKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "cartofolio:v1:" + hex.EncodeToString(hash[:])
}

// ExpandDir resolves a leading "~" to the user's home directory
func ExpandDir(dir string) string {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dir
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~"))
}
