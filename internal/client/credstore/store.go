// Package credstore persists the client's single secret — the bearer
// token — between launches. Values are sealed at rest (see cryptox) inside
// a local SQLite database, which stands in for a platform credential store.
package credstore

import "context"

// Store is an opaque key-value secret store.
//
// Get returns common.ErrNotFound when the key is absent or its stored
// value can no longer be opened (corrupt or sealed under a different
// master key). Persistence is best effort by contract: callers may log
// and discard errors.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
