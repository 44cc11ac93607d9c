package fs

import (
	"context"
	"errors"
	"os"

	"github.com/fwojciec/radasync"
)

// Ensure DocumentStore implements radasync.DocumentStore at compile time.
var _ radasync.DocumentStore = (*DocumentStore)(nil)

// DocumentStore writes markdown documents under the repository root.
type DocumentStore struct {
	root string
}

// NewDocumentStore creates a DocumentStore for the repository at root.
func NewDocumentStore(root string) *DocumentStore {
	return &DocumentStore{root: root}
}

// DocumentExists reports whether a regular file exists at path.
func (s *DocumentStore) DocumentExists(ctx context.Context, path string) (bool, error) {
	full, err := resolve(s.root, path)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(full)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, radasync.Errorf(radasync.EINVALID, "target %q is a directory", path)
	}
	return true, nil
}

// WriteDocument writes markdown to path, creating parent directories.
func (s *DocumentStore) WriteDocument(ctx context.Context, path string, markdown string) error {
	full, err := resolve(s.root, path)
	if err != nil {
		return err
	}
	return writeFileAtomic(full, []byte(markdown), 0644)
}
