package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("blob not found")

// BlobStore is a flat key/value store for whole JSON documents.
type BlobStore interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value
	Put(ctx context.Context, key string, value []byte) error

	// PutAll stores every entry so that readers see all of them or none
	PutAll(ctx context.Context, entries map[string][]byte) error

	// Close releases the backend's resources
	Close() error
}
