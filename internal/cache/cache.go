package cache

import (
	"context"
	"time"
)

// Cache defines the interface for the short-code → URL lookup cache.
// The service treats the cache as optional; a nil Cache disables caching
// without changing any observable behavior besides read latency.
type Cache interface {
	// Set stores a key-value pair with expiration
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Get retrieves a value by key. A missing key returns "" without error.
	Get(ctx context.Context, key string) (string, error)

	// Close closes the cache connection
	Close() error
}
