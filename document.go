package radasync

import "context"

// DocumentStore reads and writes document files inside the repository.
// Paths are relative to the repository root.
type DocumentStore interface {
	// DocumentExists reports whether a file exists at path.
	DocumentExists(ctx context.Context, path string) (bool, error)

	// WriteDocument writes markdown to path, creating parent directories
	// and replacing any previous content.
	WriteDocument(ctx context.Context, path string, markdown string) error
}
