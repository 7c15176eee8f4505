package clinic

import (
	"sync"
	"time"

	"github.com/13harshit/ri-dianosic/motion"
)

type cachedImage struct {
	data    []byte
	fetched time.Time
}

// ImageCache is an in-memory cache of resized images with a TTL.
type ImageCache struct {
	mu      sync.RWMutex
	clock   motion.Clock
	ttl     time.Duration
	entries map[string]cachedImage
}

// NewImageCache creates an ImageCache whose entries expire after ttl.
func NewImageCache(clock motion.Clock, ttl time.Duration) *ImageCache {
	if clock == nil {
		clock = motion.SystemClock{}
	}
	return &ImageCache{clock: clock, ttl: ttl, entries: make(map[string]cachedImage)}
}

func (c *ImageCache) valid(e cachedImage) bool {
	return c.clock.Now().Sub(e.fetched) < c.ttl
}

// Get returns the cached bytes for key while they are fresh.
func (c *ImageCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || !c.valid(e) {
		return nil, false
	}
	return e.data, true
}

// Put stores data under key.
func (c *ImageCache) Put(key string, data []byte) {
	c.mu.Lock()
	c.entries[key] = cachedImage{data: data, fetched: c.clock.Now()}
	c.mu.Unlock()
}

// GetOrLoad returns the cached value for key, calling load on a miss. Only
// successful loads are cached.
func (c *ImageCache) GetOrLoad(key string, load func() ([]byte, error)) ([]byte, error) {
	if data, ok := c.Get(key); ok {
		return data, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && c.valid(e) {
		return e.data, nil
	}
	data, err := load()
	if err != nil {
		return nil, err
	}
	c.entries[key] = cachedImage{data: data, fetched: c.clock.Now()}
	return data, nil
}

// Invalidate clears the cache.
func (c *ImageCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cachedImage)
	c.mu.Unlock()
}

// Len returns the number of entries, fresh or not.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
