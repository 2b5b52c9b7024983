// Package blob abstracts the object store holding avatar and property
// images. The service only needs upload/remove/open; listing and metadata
// stay with the provider.
package blob

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotFound reports a missing object.
	ErrNotFound = errors.New("blob: not found")
	// ErrInvalidPath reports a path that escapes the store root or is empty.
	ErrInvalidPath = errors.New("blob: invalid path")
)

// Store is the object-store boundary.
type Store interface {
	// Upload writes the object at path, replacing any existing object.
	Upload(ctx context.Context, path string, r io.Reader) error

	// Open returns a reader for the object at path.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Remove deletes the object at path. Removing a missing object returns
	// ErrNotFound.
	Remove(ctx context.Context, path string) error
}
