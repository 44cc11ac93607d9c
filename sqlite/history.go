package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/radasync"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ radasync.HistoryService = (*HistoryService)(nil)

// HistoryService implements radasync.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// RecordEdition stores a record. The ID is generated, and CommittedAt is set
// to the current time when zero.
func (s *HistoryService) RecordEdition(ctx context.Context, record *radasync.EditionRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	if record.CommittedAt.IsZero() {
		record.CommittedAt = time.Now()
	}
	record.CommittedAt = record.CommittedAt.UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO edition_records (id, document_id, edition_key, title, reg_number, revision_date, basis, target_file, content_hash, committed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.DocumentID, record.EditionKey, record.Title, record.RegNumber,
		record.RevisionDate, record.Basis, record.TargetFile, record.ContentHash,
		record.CommittedAt.Format(time.RFC3339))

	return err
}

// FindEditionRecords retrieves records matching the filter, oldest first.
func (s *HistoryService) FindEditionRecords(ctx context.Context, filter radasync.EditionRecordFilter) ([]*radasync.EditionRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, document_id, edition_key, title, reg_number, revision_date, basis, target_file, content_hash, committed_at FROM edition_records WHERE 1=1`)

	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}

	query.WriteString(" ORDER BY committed_at ASC, rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*radasync.EditionRecord
	for rows.Next() {
		var r radasync.EditionRecord
		var committedAt string
		if err := rows.Scan(&r.ID, &r.DocumentID, &r.EditionKey, &r.Title, &r.RegNumber,
			&r.RevisionDate, &r.Basis, &r.TargetFile, &r.ContentHash, &committedAt); err != nil {
			return nil, err
		}
		if r.CommittedAt, err = parseRFC3339(committedAt, "committed_at"); err != nil {
			return nil, err
		}
		records = append(records, &r)
	}
	return records, rows.Err()
}
