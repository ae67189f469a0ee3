package store

import (
	"context"

	"github.com/rcliao/addressbook/internal/book"
)

// FileStore keeps the book in a single JSON file.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context, b *book.Book) (bool, error) {
	return b.Load(s.path)
}

func (s *FileStore) Save(_ context.Context, b *book.Book) error {
	return b.Save(s.path)
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Close() error { return nil }
