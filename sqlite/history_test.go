package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/radasync"
	"github.com/fwojciec/radasync/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(documentID, editionKey string, committedAt time.Time) *radasync.EditionRecord {
	return &radasync.EditionRecord{
		DocumentID:   documentID,
		EditionKey:   editionKey,
		Title:        "Цивільний кодекс України",
		RegNumber:    "435-IV",
		RevisionDate: "01.01.2004",
		TargetFile:   "codes/civil.md",
		ContentHash:  "0123456789abcdef",
		CommittedAt:  committedAt,
	}
}

func TestHistoryService_RecordEdition(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and persists fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(openTestDB(t))
		ctx := context.Background()
		at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		rec := newRecord("435-15", "ed20040101", at)
		rec.Basis = "1234-IV"

		require.NoError(t, svc.RecordEdition(ctx, rec))
		assert.NotEmpty(t, rec.ID)

		got, err := svc.FindEditionRecords(ctx, radasync.EditionRecordFilter{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, rec.ID, got[0].ID)
		assert.Equal(t, "435-15", got[0].DocumentID)
		assert.Equal(t, "ed20040101", got[0].EditionKey)
		assert.Equal(t, "Цивільний кодекс України", got[0].Title)
		assert.Equal(t, "435-IV", got[0].RegNumber)
		assert.Equal(t, "01.01.2004", got[0].RevisionDate)
		assert.Equal(t, "1234-IV", got[0].Basis)
		assert.Equal(t, "codes/civil.md", got[0].TargetFile)
		assert.Equal(t, "0123456789abcdef", got[0].ContentHash)
		assert.True(t, at.Equal(got[0].CommittedAt))
	})

	t.Run("sets committed time when zero", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(openTestDB(t))
		rec := newRecord("435-15", "ed20040101", time.Time{})

		require.NoError(t, svc.RecordEdition(context.Background(), rec))

		assert.False(t, rec.CommittedAt.IsZero())
	})

	t.Run("rejects record without edition key", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewHistoryService(openTestDB(t))

		err := svc.RecordEdition(context.Background(), newRecord("435-15", "", time.Now()))

		require.Error(t, err)
		assert.Equal(t, radasync.EINVALID, radasync.ErrorCode(err))
	})
}

func TestHistoryService_FindEditionRecords(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.HistoryService {
		t.Helper()

		svc := sqlite.NewHistoryService(openTestDB(t))
		ctx := context.Background()
		at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, svc.RecordEdition(ctx, newRecord("435-15", "ed20040101", at)))
		require.NoError(t, svc.RecordEdition(ctx, newRecord("254к/96-вр", "ed19960628", at)))
		require.NoError(t, svc.RecordEdition(ctx, newRecord("435-15", "ed20050101", at.Add(time.Minute))))
		require.NoError(t, svc.RecordEdition(ctx, newRecord("435-15", "ed20060101", at.Add(2*time.Minute))))
		return svc
	}

	keys := func(records []*radasync.EditionRecord) []string {
		var out []string
		for _, r := range records {
			out = append(out, r.EditionKey)
		}
		return out
	}

	t.Run("returns all records oldest first with insertion order for ties", func(t *testing.T) {
		t.Parallel()

		got, err := seed(t).FindEditionRecords(context.Background(), radasync.EditionRecordFilter{})

		require.NoError(t, err)
		assert.Equal(t, []string{"ed20040101", "ed19960628", "ed20050101", "ed20060101"}, keys(got))
	})

	t.Run("filters by document", func(t *testing.T) {
		t.Parallel()

		doc := "435-15"
		got, err := seed(t).FindEditionRecords(context.Background(), radasync.EditionRecordFilter{DocumentID: &doc})

		require.NoError(t, err)
		assert.Equal(t, []string{"ed20040101", "ed20050101", "ed20060101"}, keys(got))
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		got, err := seed(t).FindEditionRecords(context.Background(), radasync.EditionRecordFilter{Limit: 2, Offset: 1})

		require.NoError(t, err)
		assert.Equal(t, []string{"ed19960628", "ed20050101"}, keys(got))
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		got, err := seed(t).FindEditionRecords(context.Background(), radasync.EditionRecordFilter{Offset: 3})

		require.NoError(t, err)
		assert.Equal(t, []string{"ed20060101"}, keys(got))
	})

	t.Run("returns empty for unknown document", func(t *testing.T) {
		t.Parallel()

		doc := "missing"
		got, err := seed(t).FindEditionRecords(context.Background(), radasync.EditionRecordFilter{DocumentID: &doc})

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
