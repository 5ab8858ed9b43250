package store

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lcw/v2"
)

// KV is the minimal key-value contract shared by Store, Cached and Scoped.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Cached wraps a KV with a loading cache and satisfies KV itself.
// Cache is populated on reads via loader function, invalidated on writes.
type Cached struct {
	store KV
	cache lcw.LoadingCache[string]
}

// NewCached creates a new cached store wrapper.
// maxKeys sets the maximum number of entries in the cache.
func NewCached(store KV, maxKeys int) (*Cached, error) {
	cache, err := lcw.NewLruCache(lcw.NewOpts[string]().MaxKeys(maxKeys))
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cached{store: store, cache: cache}, nil
}

// Get retrieves the value for a key, using cache with load-through.
// Missing keys are not cached, ErrNotFound passes through.
func (c *Cached) Get(ctx context.Context, key string) (string, error) {
	val, err := c.cache.Get(key, func() (string, error) {
		v, loadErr := c.store.Get(ctx, key)
		if loadErr != nil {
			return "", fmt.Errorf("load from store: %w", loadErr)
		}
		return v, nil
	})
	if err != nil {
		return "", fmt.Errorf("cache get: %w", err)
	}
	return val, nil
}

// Set stores a value and invalidates the cache entry.
func (c *Cached) Set(ctx context.Context, key, value string) error {
	if err := c.store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("store set: %w", err)
	}
	c.cache.Invalidate(func(k string) bool { return k == key })
	return nil
}

// Delete removes a key and invalidates the cache entry.
func (c *Cached) Delete(ctx context.Context, key string) error {
	// invalidate regardless of error - key might have been cached
	c.cache.Invalidate(func(k string) bool { return k == key })
	if err := c.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("store delete: %w", err)
	}
	return nil
}

// Close closes the cache. The wrapped store is owned by the caller.
func (c *Cached) Close() error {
	if err := c.cache.Close(); err != nil {
		return fmt.Errorf("cache close: %w", err)
	}
	return nil
}

// Stats returns cache statistics.
func (c *Cached) Stats() lcw.CacheStat {
	return c.cache.Stat()
}
