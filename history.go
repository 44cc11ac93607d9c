package radasync

import (
	"context"
	"time"
)

// EditionRecord is the history entry of one committed edition.
type EditionRecord struct {
	ID           string    `json:"id"`
	DocumentID   string    `json:"documentId"`
	EditionKey   string    `json:"editionKey"`
	Title        string    `json:"title"`
	RegNumber    string    `json:"regNumber"`
	RevisionDate string    `json:"revisionDate"`
	Basis        string    `json:"basis,omitempty"`
	TargetFile   string    `json:"targetFile"`
	ContentHash  string    `json:"contentHash"`
	CommittedAt  time.Time `json:"committedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *EditionRecord) Validate() error {
	if r.DocumentID == "" {
		return Errorf(EINVALID, "edition record document ID required")
	}
	if r.EditionKey == "" {
		return Errorf(EINVALID, "edition record edition key required")
	}
	return nil
}

// HistoryService keeps a log of committed editions across runs.
type HistoryService interface {
	// RecordEdition stores a record, assigning its ID.
	RecordEdition(ctx context.Context, record *EditionRecord) error

	// FindEditionRecords returns records matching the filter, oldest first.
	FindEditionRecords(ctx context.Context, filter EditionRecordFilter) ([]*EditionRecord, error)
}

// EditionRecordFilter represents a filter for FindEditionRecords.
type EditionRecordFilter struct {
	DocumentID *string `json:"documentId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
