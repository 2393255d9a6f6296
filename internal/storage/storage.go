// Package storage is the durable local mirror of the content collections:
// one key per collection, each holding the JSON-encoded slice. It plays the
// role browser local storage plays for the deployed site.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound indicates the key has never been written.
var ErrKeyNotFound = errors.New("storage: key not found")

// Repository is the durable key-value contract the content store persists
// through.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
