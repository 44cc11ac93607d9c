package mock

import (
	"context"

	"github.com/fwojciec/radasync"
)

var _ radasync.Committer = (*Committer)(nil)

// Committer is a mock implementation of radasync.Committer.
type Committer struct {
	CommitFn func(ctx context.Context, c *radasync.Commit) error
}

func (c *Committer) Commit(ctx context.Context, commit *radasync.Commit) error {
	return c.CommitFn(ctx, commit)
}

var _ radasync.MessageStore = (*MessageStore)(nil)

// MessageStore is a mock implementation of radasync.MessageStore.
type MessageStore struct {
	WriteMessageFn func(ctx context.Context, message string) (string, error)
}

func (s *MessageStore) WriteMessage(ctx context.Context, message string) (string, error) {
	return s.WriteMessageFn(ctx, message)
}
