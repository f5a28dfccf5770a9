package repository

import "context"

// Storage keys. The v2 suffix is part of the stored contract: renaming a key
// orphans old data, there is no migration path.
const (
	KeyMenu        = "pos.menu.v2"
	KeyOrders      = "pos.orders.v2"
	KeyActiveOrder = "pos.activeOrder.v2"
)

// ErrKeyNotFound is returned by Get when a key has never been written.
type ErrKeyNotFound struct {
	Key string
}

func (e *ErrKeyNotFound) Error() string {
	return "blob key not found: " + e.Key
}

// BlobStore is the opaque key -> JSON blob storage medium. Implementations
// must treat the value as an uninterpreted byte string.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
