package storage

import (
	"context"
	"io"
)

// Storage is the permanent home of encrypted archives and their manifest
// sidecars. The only backend is the local version-controlled config
// directory; archives travel between machines through that repository.
type Storage interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
	Location() string

	PutMetadata(ctx context.Context, name string, data []byte) error
	GetMetadata(ctx context.Context, name string) ([]byte, error)
}
