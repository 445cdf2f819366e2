package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// KV is a string-keyed blob store. Get returns ErrNotFound for a missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Path() string
	Close() error
}
