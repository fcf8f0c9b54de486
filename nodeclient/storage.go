package nodeclient

import "context"

type storageClient interface {
	// Put sets the value for the given key. If the key already exists, it is overwritten.
	Put(ctx context.Context, key, value string) error

	// Get returns the value for the given key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
