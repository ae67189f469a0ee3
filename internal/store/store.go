// Package store persists the address book to a JSON file or a SQLite database.
package store

import (
	"context"
	"fmt"

	"github.com/rcliao/addressbook/internal/book"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// Store defines the address book persistence interface.
type Store interface {
	// Load replaces b's contents with the stored records.
	// found is false when nothing has been stored yet; b is then untouched.
	Load(ctx context.Context, b *book.Book) (found bool, err error)

	// Save writes every record of b, replacing what was stored before.
	Save(ctx context.Context, b *book.Book) error

	// Path returns the file backing the store.
	Path() string

	// Close closes the store.
	Close() error
}

// Open returns the store for backend at path.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendJSON, "":
		return NewFileStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	}
	return nil, fmt.Errorf("unknown storage backend %q (valid: json, sqlite)", backend)
}
