// Package localstore provides the durable local key-value store the
// storefront persists its state in. One value per fixed key, synchronous
// overwrites, no TTL: the analogue of a browser's origin-scoped storage.
package localstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists under the key
var ErrKeyNotFound = errors.New("localstore: key not found")

// Fixed keys used by the storefront
const (
	// CartKey holds the serialized cart snapshot
	CartKey = "cart"
	// UserInfoKey holds the signed-in user identity
	UserInfoKey = "userInfo"
)

// Store is a durable local key-value store. Set overwrites synchronously;
// a Set that has returned is on stable storage.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
