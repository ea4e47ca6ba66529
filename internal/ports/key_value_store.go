package ports

import "context"

// KeyValueStore persists small serialized values under fixed keys.
// Get on a missing key returns a not-found AppError.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
