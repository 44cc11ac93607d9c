package main_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/radasync"
	main "github.com/fwojciec/radasync/cmd/radasync"
	"github.com/fwojciec/radasync/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints records with filter and limit", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		var got radasync.EditionRecordFilter
		env.deps.History = &mock.HistoryService{
			FindEditionRecordsFn: func(ctx context.Context, filter radasync.EditionRecordFilter) ([]*radasync.EditionRecord, error) {
				got = filter
				return []*radasync.EditionRecord{{
					DocumentID:   "435-15",
					EditionKey:   "ed20040101",
					RevisionDate: "20040101",
					TargetFile:   "codes/civil.md",
					ContentHash:  "00ff00ff00ff00ff",
					CommittedAt:  testTime,
				}}, nil
			},
		}

		err := (&main.HistoryCmd{Document: "435-15", Limit: 5}).Run(env.deps)

		require.NoError(t, err)
		require.NotNil(t, got.DocumentID)
		assert.Equal(t, "435-15", *got.DocumentID)
		assert.Equal(t, 5, got.Limit)
		assert.Equal(t, "2024-05-01 12:00  435-15  ed20040101  01.01.2004  codes/civil.md  00ff00ff00ff00ff\n", env.stdout.String())
	})

	t.Run("reports empty history", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		env.deps.History = &mock.HistoryService{
			FindEditionRecordsFn: func(ctx context.Context, filter radasync.EditionRecordFilter) ([]*radasync.EditionRecord, error) {
				assert.Nil(t, filter.DocumentID)
				return nil, nil
			},
		}

		err := (&main.HistoryCmd{Limit: 20}).Run(env.deps)

		require.NoError(t, err)
		assert.Contains(t, env.stdout.String(), "No editions recorded.")
	})

	t.Run("fails without history database", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()

		err := (&main.HistoryCmd{}).Run(env.deps)

		require.Error(t, err)
		assert.Equal(t, radasync.EINVALID, radasync.ErrorCode(err))
	})

	t.Run("reports query errors", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		env.deps.History = &mock.HistoryService{
			FindEditionRecordsFn: func(ctx context.Context, filter radasync.EditionRecordFilter) ([]*radasync.EditionRecord, error) {
				return nil, errors.New("database is locked")
			},
		}

		err := (&main.HistoryCmd{}).Run(env.deps)

		require.Error(t, err)
		assert.Contains(t, env.stderr.String(), "database is locked")
	})
}
