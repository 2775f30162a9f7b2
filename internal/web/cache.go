package web

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// conversionCache memoizes rendered outputs keyed by input hash.
// A zero TTL disables it; every lookup then misses.
type conversionCache struct {
	store *cache.Cache
}

func newConversionCache(ttl time.Duration) *conversionCache {
	if ttl <= 0 {
		return &conversionCache{}
	}
	return &conversionCache{store: cache.New(ttl, 2*ttl)}
}

func (c *conversionCache) put(key string, value any) {
	if c.store == nil {
		return
	}
	c.store.Set(key, value, cache.DefaultExpiration)
}

func (c *conversionCache) bytes(key string) ([]byte, bool) {
	if c.store == nil {
		return nil, false
	}
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (c *conversionCache) text(key string) (string, bool) {
	if c.store == nil {
		return "", false
	}
	v, ok := c.store.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// cacheKey hashes the output kind and every input that affects the
// rendered bytes. Fields are NUL-separated so concatenation cannot
// collide across boundaries.
func cacheKey(kind, title, markdown string) string {
	h := sha256.New()
	h.Write([]byte(kind))
	h.Write([]byte{0})
	h.Write([]byte(title))
	h.Write([]byte{0})
	h.Write([]byte(markdown))
	return hex.EncodeToString(h.Sum(nil))
}
