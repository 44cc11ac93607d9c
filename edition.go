package radasync

import (
	"context"
	"strings"
)

// EditionStatus classifies an edition relative to the present.
type EditionStatus int

// Edition statuses as published by the source.
const (
	EditionPrevious EditionStatus = iota
	EditionCurrent
	EditionFuture
)

// String returns a lowercase name of the status.
func (s EditionStatus) String() string {
	switch s {
	case EditionPrevious:
		return "previous"
	case EditionCurrent:
		return "current"
	case EditionFuture:
		return "future"
	default:
		return "unknown"
	}
}

// Edition is a dated revision of a legal document.
type Edition struct {
	// Key is the source-specific identifier, e.g. "ed20150304".
	Key string `json:"key"`

	// Position in the chronological listing, 0 being the earliest.
	Position int `json:"position"`

	Status EditionStatus `json:"status"`
}

// EditionMetadata describes an edition for commit messages and history.
type EditionMetadata struct {
	Title     string `json:"title"`
	RegNumber string `json:"regNumber"`
	// RevisionDate is the numeric YYYYMMDD date of the revision.
	RevisionDate string `json:"revisionDate"`
	// Basis is the legal act that caused the change. May be empty.
	Basis string `json:"basis,omitempty"`
}

// EditionSource lists and retrieves the editions of a document.
// Implementations differ in how the edition listing is discovered.
type EditionSource interface {
	// ListEditions returns the editions up to and including the current one,
	// in chronological order. Future editions are excluded.
	ListEditions(ctx context.Context, documentID string) ([]Edition, error)

	// FetchContent returns the raw HTML of an edition.
	FetchContent(ctx context.Context, documentID, editionKey string) (string, error)

	// FetchMetadata returns the descriptive metadata of an edition.
	FetchMetadata(ctx context.Context, documentID, editionKey string) (*EditionMetadata, error)
}

// CurrentEditions filters a listing down to previous editions in their
// original order followed by the single current edition. Future editions
// and any current edition after the first are dropped. Positions are
// renumbered from 0.
func CurrentEditions(editions []Edition) []Edition {
	var current *Edition
	result := make([]Edition, 0, len(editions))
	for i := range editions {
		switch editions[i].Status {
		case EditionPrevious:
			result = append(result, editions[i])
		case EditionCurrent:
			if current == nil {
				current = &editions[i]
			}
		}
	}
	if current != nil {
		result = append(result, *current)
	}
	for i := range result {
		result[i].Position = i
	}
	return result
}

// EditionKeys returns the keys of the editions in order.
func EditionKeys(editions []Edition) []string {
	keys := make([]string, len(editions))
	for i, e := range editions {
		keys[i] = e.Key
	}
	return keys
}

// FormatRevisionDate converts a YYYYMMDD date to DD.MM.YYYY.
// Values that are not eight digits are returned unchanged.
func FormatRevisionDate(d string) string {
	d = strings.TrimSpace(d)
	if len(d) != 8 {
		return d
	}
	for _, r := range d {
		if r < '0' || r > '9' {
			return d
		}
	}
	return d[6:] + "." + d[4:6] + "." + d[:4]
}
