package kms

import (
	"context"
	"sync"
)

// CachingPort decorates a Port, memoizing GetPublicKey per key ID. KMS
// public-key lookups are a network round trip to a fixed value, so callers
// that sign repeatedly under the same key ID pay for it once.
//
// Sign always passes through uncached: every signing call must reach the
// KMS, since the digest differs per call.
type CachingPort struct {
	next Port

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewCachingPort wraps next with a public-key cache.
func NewCachingPort(next Port) *CachingPort {
	return &CachingPort{
		next:  next,
		cache: make(map[string][]byte),
	}
}

// GetPublicKey returns the cached DER SubjectPublicKeyInfo for keyID,
// fetching and storing it on first use.
func (c *CachingPort) GetPublicKey(ctx context.Context, keyID string) ([]byte, error) {
	c.mu.RLock()
	der, ok := c.cache[keyID]
	c.mu.RUnlock()
	if ok {
		return der, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if der, ok := c.cache[keyID]; ok {
		return der, nil
	}

	der, err := c.next.GetPublicKey(ctx, keyID)
	if err != nil {
		return nil, err
	}
	c.cache[keyID] = der
	return der, nil
}

// Sign delegates to the wrapped port without caching.
func (c *CachingPort) Sign(ctx context.Context, keyID string, digest []byte) ([]byte, error) {
	return c.next.Sign(ctx, keyID, digest)
}
