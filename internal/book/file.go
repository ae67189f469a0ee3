package book

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/rcliao/addressbook/internal/model"
)

// Save writes the book to path, replacing any existing file.
func (b *Book) Save(path string) error {
	var buf bytes.Buffer
	if err := b.Encode(&buf); err != nil {
		return model.NewError("book.save", model.KindIOFailure, path, err)
	}
	if err := writeFile(path, buf.Bytes(), 0o600); err != nil {
		return model.NewError("book.save", model.KindIOFailure, path, err)
	}
	return nil
}

// Load replaces the book's contents with the records stored at path.
// A missing file is not an error: found is false and the book is left as is.
// On any other failure the book is left as is.
func (b *Book) Load(path string) (found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return true, model.NewError("book.load", model.KindIOFailure, path, err)
	}

	rs, err := Decode(bytes.NewReader(data))
	if err != nil {
		return true, err
	}
	return true, b.Replace(rs)
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
