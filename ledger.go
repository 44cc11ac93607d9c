package radasync

import (
	"context"
	"path"
	"strings"
	"time"
)

// Ledger records which documents are mirrored, where their files live, and
// the last edition committed for each of them.
type Ledger struct {
	Files []*LedgerEntry `json:"files"`
}

// LedgerEntry tracks the synchronization state of one document.
type LedgerEntry struct {
	DocumentID           string    `json:"documentId"`
	TargetFile           string    `json:"targetFileRelative"`
	LastProcessedEdition string    `json:"lastProcessedEdition"`
	LastSyncDate         time.Time `json:"lastSyncDate"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *LedgerEntry) Validate() error {
	if e.DocumentID == "" {
		return Errorf(EINVALID, "ledger entry document ID required")
	}
	if e.TargetFile == "" {
		return Errorf(EINVALID, "ledger entry target file required")
	}
	return ValidateTargetFile(e.TargetFile)
}

// FindEntry returns the entry for a document, or nil if it is not tracked.
func (l *Ledger) FindEntry(documentID string) *LedgerEntry {
	for _, e := range l.Files {
		if e.DocumentID == documentID {
			return e
		}
	}
	return nil
}

// Upsert records editionKey as the last processed edition of a document.
// A new entry is appended the first time a document is seen. For existing
// entries only the checkpoint and sync date change; the target file given
// here is ignored.
func (l *Ledger) Upsert(documentID, editionKey, targetFile string, now time.Time) *LedgerEntry {
	if e := l.FindEntry(documentID); e != nil {
		e.LastProcessedEdition = editionKey
		e.LastSyncDate = now
		return e
	}
	e := &LedgerEntry{
		DocumentID:           documentID,
		TargetFile:           targetFile,
		LastProcessedEdition: editionKey,
		LastSyncDate:         now,
	}
	l.Files = append(l.Files, e)
	return e
}

// Remove drops the entry of a document. It reports whether one was found.
func (l *Ledger) Remove(documentID string) bool {
	for i, e := range l.Files {
		if e.DocumentID == documentID {
			l.Files = append(l.Files[:i], l.Files[i+1:]...)
			return true
		}
	}
	return false
}

// LedgerStore persists the ledger. The whole ledger is rewritten on save.
type LedgerStore interface {
	// LoadLedger reads the ledger. A missing ledger yields an empty one.
	LoadLedger(ctx context.Context) (*Ledger, error)

	// SaveLedger overwrites the persisted ledger.
	SaveLedger(ctx context.Context, ledger *Ledger) error

	// Path returns the ledger location relative to the repository root.
	Path() string
}

// ValidateTargetFile checks that p is a relative, slash-separated path that
// stays inside the repository.
func ValidateTargetFile(p string) error {
	if p == "" {
		return Errorf(EINVALID, "target file required")
	}
	if path.IsAbs(p) || strings.HasPrefix(p, `\`) || (len(p) > 1 && p[1] == ':') {
		return Errorf(EINVALID, "target file %q must be relative to the repository", p)
	}
	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return Errorf(EINVALID, "target file %q escapes the repository", p)
	}
	if strings.HasSuffix(p, "/") {
		return Errorf(EINVALID, "target file %q is a directory", p)
	}
	return nil
}
