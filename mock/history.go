package mock

import (
	"context"

	"github.com/fwojciec/radasync"
)

var _ radasync.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of radasync.HistoryService.
type HistoryService struct {
	RecordEditionFn      func(ctx context.Context, record *radasync.EditionRecord) error
	FindEditionRecordsFn func(ctx context.Context, filter radasync.EditionRecordFilter) ([]*radasync.EditionRecord, error)
}

func (s *HistoryService) RecordEdition(ctx context.Context, record *radasync.EditionRecord) error {
	return s.RecordEditionFn(ctx, record)
}

func (s *HistoryService) FindEditionRecords(ctx context.Context, filter radasync.EditionRecordFilter) ([]*radasync.EditionRecord, error) {
	return s.FindEditionRecordsFn(ctx, filter)
}
