package fs

import (
	"context"
	"path/filepath"

	"github.com/fwojciec/radasync"
)

// MessageFileName is the scratch file reused for every commit message.
const MessageFileName = "COMMIT_MESSAGE.txt"

// Ensure MessageStore implements radasync.MessageStore at compile time.
var _ radasync.MessageStore = (*MessageStore)(nil)

// MessageStore writes commit messages into a scratch directory outside the
// repository. Each message replaces the previous one.
type MessageStore struct {
	dir string
}

// NewMessageStore creates a MessageStore writing into dir.
func NewMessageStore(dir string) *MessageStore {
	return &MessageStore{dir: dir}
}

// WriteMessage writes message to the scratch file and returns its path.
func (s *MessageStore) WriteMessage(ctx context.Context, message string) (string, error) {
	path := filepath.Join(s.dir, MessageFileName)
	if err := writeFileAtomic(path, []byte(message), 0644); err != nil {
		return "", err
	}
	return path, nil
}
