package radasync

import "context"

// Card is the structured description the source publishes for a document
// or one of its editions.
type Card struct {
	Title        string
	RegNumber    string
	RevisionDate string // YYYYMMDD
	Basis        string

	// Editions lists every edition the card knows about in published order,
	// including future ones.
	Editions []Edition
}

// Metadata returns the descriptive part of the card.
func (c *Card) Metadata() *EditionMetadata {
	return &EditionMetadata{
		Title:        c.Title,
		RegNumber:    c.RegNumber,
		RevisionDate: c.RevisionDate,
		Basis:        c.Basis,
	}
}

// CardService retrieves cards.
type CardService interface {
	// FindCard returns the card of a document, or of one edition when
	// editionKey is not empty.
	// Returns ENOTFOUND if the source has no such card.
	FindCard(ctx context.Context, documentID, editionKey string) (*Card, error)
}
