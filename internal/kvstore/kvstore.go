// Package kvstore holds flat key/value backends. Each key maps to one opaque
// value that is always replaced whole.
package kvstore

import "context"

// KV is a flat persistent key/value store.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
}
