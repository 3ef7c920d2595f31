// Package storage provides the file archive behind the invoice upload entry
// point. Uploaded invoices are kept as opaque blobs; nothing here parses them.
package storage

import (
	"context"
	"time"
)

// FileMetadata represents metadata about a stored file
type FileMetadata struct {
	Key      string    `json:"key"`
	Size     int64     `json:"size"`
	StoredAt time.Time `json:"stored_at"`
}

// FileStorage provides an abstraction for archiving uploaded files
type FileStorage interface {
	// Store saves a file under the given key, overwriting any previous blob
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve gets a file by its storage key
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Exists checks if a file exists at the given key
	Exists(ctx context.Context, key string) (bool, error)

	// List returns metadata for every file whose key starts with prefix
	List(ctx context.Context, prefix string) ([]FileMetadata, error)
}
