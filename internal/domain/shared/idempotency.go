package shared

import (
	"context"
	"time"
)

// IdempotencyStore deduplicates retried submissions. A key is remembered
// together with the identifier of the record the first submission
// produced, so replays can return the original record instead of
// creating a second one.
type IdempotencyStore interface {
	// Lookup returns the result stored under key, or "" if the key is
	// unknown or expired.
	Lookup(ctx context.Context, key string) (string, error)

	// Remember stores result under key for ttl. It returns false when the
	// key already held an unexpired value; the existing value wins.
	Remember(ctx context.Context, key, result string, ttl time.Duration) (bool, error)

	// Close releases any resources held by the store.
	Close() error
}
