package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers processed request keys to prevent duplicate
// execution of non-idempotent operations such as checkout.
type IdempotencyStore interface {
	// MarkProcessed marks a key as processed with a TTL and an associated value.
	// Returns true if the key was newly marked, false if it was already present.
	MarkProcessed(ctx context.Context, key, value string, ttl time.Duration) (bool, error)

	// Lookup returns the stored value for a processed key.
	// The second return value is false when the key is unknown or expired.
	Lookup(ctx context.Context, key string) (string, bool, error)

	// Close closes the store and releases resources
	Close() error
}
