package mock

import (
	"context"

	"github.com/fwojciec/radasync"
)

// Compile-time interface verification.
var (
	_ radasync.EditionSource = (*EditionSource)(nil)
	_ radasync.CardService   = (*CardService)(nil)
)

// EditionSource is a mock implementation of radasync.EditionSource.
type EditionSource struct {
	ListEditionsFn  func(ctx context.Context, documentID string) ([]radasync.Edition, error)
	FetchContentFn  func(ctx context.Context, documentID, editionKey string) (string, error)
	FetchMetadataFn func(ctx context.Context, documentID, editionKey string) (*radasync.EditionMetadata, error)
}

func (s *EditionSource) ListEditions(ctx context.Context, documentID string) ([]radasync.Edition, error) {
	return s.ListEditionsFn(ctx, documentID)
}

func (s *EditionSource) FetchContent(ctx context.Context, documentID, editionKey string) (string, error) {
	return s.FetchContentFn(ctx, documentID, editionKey)
}

func (s *EditionSource) FetchMetadata(ctx context.Context, documentID, editionKey string) (*radasync.EditionMetadata, error) {
	return s.FetchMetadataFn(ctx, documentID, editionKey)
}

// CardService is a mock implementation of radasync.CardService.
type CardService struct {
	FindCardFn func(ctx context.Context, documentID, editionKey string) (*radasync.Card, error)
}

func (s *CardService) FindCard(ctx context.Context, documentID, editionKey string) (*radasync.Card, error) {
	return s.FindCardFn(ctx, documentID, editionKey)
}
