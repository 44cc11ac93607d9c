package goquery

import (
	"context"
	"fmt"

	"github.com/fwojciec/radasync"
)

// Ensure PageSource implements radasync.EditionSource at compile time.
var _ radasync.EditionSource = (*PageSource)(nil)

// PageSource lists editions by scraping the document page. Metadata still
// comes from the document cards.
type PageSource struct {
	fetcher  radasync.Fetcher
	cards    radasync.CardService
	endpoint radasync.Endpoint
	markers  Markers
}

// NewPageSource creates a new PageSource.
func NewPageSource(fetcher radasync.Fetcher, cards radasync.CardService, endpoint radasync.Endpoint, markers Markers) *PageSource {
	return &PageSource{
		fetcher:  fetcher,
		cards:    cards,
		endpoint: endpoint,
		markers:  markers,
	}
}

// ListEditions returns previous editions in page order followed by the
// current edition.
func (s *PageSource) ListEditions(ctx context.Context, documentID string) ([]radasync.Edition, error) {
	html, err := s.fetcher.Fetch(ctx, s.endpoint.DocumentURL(documentID, ""))
	if err != nil {
		return nil, fmt.Errorf("page of %s: %w", documentID, err)
	}

	all, err := ParseEditions(html, s.markers)
	if err != nil {
		return nil, err
	}

	editions := radasync.CurrentEditions(all)
	if len(editions) == 0 || editions[len(editions)-1].Status != radasync.EditionCurrent {
		return nil, radasync.Errorf(radasync.ENOTFOUND, "document %s has no current edition", documentID)
	}
	return editions, nil
}

// FetchContent returns the HTML page of an edition.
func (s *PageSource) FetchContent(ctx context.Context, documentID, editionKey string) (string, error) {
	return s.fetcher.Fetch(ctx, s.endpoint.DocumentURL(documentID, editionKey))
}

// FetchMetadata reads the edition's card.
func (s *PageSource) FetchMetadata(ctx context.Context, documentID, editionKey string) (*radasync.EditionMetadata, error) {
	card, err := s.cards.FindCard(ctx, documentID, editionKey)
	if err != nil {
		return nil, fmt.Errorf("card of %s/%s: %w", documentID, editionKey, err)
	}
	return card.Metadata(), nil
}
