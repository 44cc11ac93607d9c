package radasync

import "context"

// Commit describes one version-control commit.
type Commit struct {
	// MessageFile holds the full commit message.
	MessageFile string

	// Paths limits staging and the commit to these files, relative to the
	// repository root.
	Paths []string

	// AllowEmpty records the commit even when the files did not change.
	AllowEmpty bool
}

// Validate returns an error if the commit contains invalid fields.
func (c *Commit) Validate() error {
	if c.MessageFile == "" {
		return Errorf(EINVALID, "commit message file required")
	}
	if len(c.Paths) == 0 {
		return Errorf(EINVALID, "commit paths required")
	}
	return nil
}

// Committer records changes in the repository's history.
type Committer interface {
	// Commit stages the commit's paths and creates a commit.
	Commit(ctx context.Context, c *Commit) error
}

// MessageStore persists commit messages where the Committer can read them.
type MessageStore interface {
	// WriteMessage stores message and returns the file path holding it.
	WriteMessage(ctx context.Context, message string) (path string, err error)
}
