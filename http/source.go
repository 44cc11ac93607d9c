package http

import (
	"context"
	"fmt"

	"github.com/fwojciec/radasync"
)

// Ensure CardSource implements radasync.EditionSource at compile time.
var _ radasync.EditionSource = (*CardSource)(nil)

// CardSource lists editions from the document card's eds_dates mapping.
type CardSource struct {
	cards    radasync.CardService
	fetcher  radasync.Fetcher
	endpoint radasync.Endpoint
}

// NewCardSource creates a new CardSource.
func NewCardSource(cards radasync.CardService, fetcher radasync.Fetcher, endpoint radasync.Endpoint) *CardSource {
	return &CardSource{cards: cards, fetcher: fetcher, endpoint: endpoint}
}

// ListEditions returns the editions up to and including the current one.
func (s *CardSource) ListEditions(ctx context.Context, documentID string) ([]radasync.Edition, error) {
	card, err := s.cards.FindCard(ctx, documentID, "")
	if err != nil {
		return nil, fmt.Errorf("card of %s: %w", documentID, err)
	}

	editions := radasync.CurrentEditions(card.Editions)
	if len(editions) == 0 || editions[len(editions)-1].Status != radasync.EditionCurrent {
		return nil, radasync.Errorf(radasync.ENOTFOUND, "document %s has no current edition", documentID)
	}
	return editions, nil
}

// FetchContent returns the HTML page of an edition.
func (s *CardSource) FetchContent(ctx context.Context, documentID, editionKey string) (string, error) {
	return s.fetcher.Fetch(ctx, s.endpoint.DocumentURL(documentID, editionKey))
}

// FetchMetadata reads the edition's own card.
func (s *CardSource) FetchMetadata(ctx context.Context, documentID, editionKey string) (*radasync.EditionMetadata, error) {
	card, err := s.cards.FindCard(ctx, documentID, editionKey)
	if err != nil {
		return nil, fmt.Errorf("card of %s/%s: %w", documentID, editionKey, err)
	}
	return card.Metadata(), nil
}
