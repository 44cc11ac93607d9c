package mock

import (
	"context"

	"github.com/fwojciec/radasync"
)

var _ radasync.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of radasync.DocumentStore.
type DocumentStore struct {
	DocumentExistsFn func(ctx context.Context, path string) (bool, error)
	WriteDocumentFn  func(ctx context.Context, path, markdown string) error
}

func (s *DocumentStore) DocumentExists(ctx context.Context, path string) (bool, error) {
	return s.DocumentExistsFn(ctx, path)
}

func (s *DocumentStore) WriteDocument(ctx context.Context, path, markdown string) error {
	return s.WriteDocumentFn(ctx, path, markdown)
}
