// Package store persists an AddressBook to a single binary file.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vortex-fintech/addressbook/book"
	"github.com/vortex-fintech/addressbook/retry"
)

const filePerm = 0o600

// Store is what the dispatcher needs from persistence.
type Store interface {
	Load(ctx context.Context) (*book.AddressBook, error)
	Save(ctx context.Context, b *book.AddressBook) error
}

// FileStore keeps the book in Path. Saves replace the file atomically and are
// retried according to Retry.
type FileStore struct {
	Path  string
	Retry retry.Policy
}

func NewFileStore(path string, p retry.Policy) *FileStore {
	return &FileStore{Path: path, Retry: p}
}

// Load reads the book. A missing file yields an empty book; a file that
// cannot be decoded is an error and is left untouched.
func (s *FileStore) Load(ctx context.Context) (*book.AddressBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return book.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}

	b, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return b, nil
}

// Save writes b to Path, retrying transient I/O failures.
func (s *FileStore) Save(ctx context.Context, b *book.AddressBook) error {
	data := Marshal(b)
	err := retry.Do(ctx, s.Retry, func(context.Context) error {
		return writeFileAtomic(s.Path, data, filePerm)
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", s.Path, err)
	}
	return nil
}

// writeFileAtomic writes to a temp file in the target directory, syncs it and
// renames it over path, so readers see either the old or the new content.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return fsyncDir(dir)
}

func fsyncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
