package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("key not found")
)

// Store persists one JSON-serializable value per key. Every mutation writes
// the full value back; there are no partial-field updates and no transactions
// across keys. Callers must treat ErrNotFound (and any decode failure) as
// "use the type's default value".
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}

// Key builds a namespaced storage key, e.g. Key("pathan", "progress")
// -> "pathan-progress".
func Key(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "-" + name
}
