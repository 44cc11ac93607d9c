package radasync_test

import (
	"testing"

	"github.com/fwojciec/radasync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editions(keys ...string) []radasync.Edition {
	result := make([]radasync.Edition, len(keys))
	for i, k := range keys {
		result[i] = radasync.Edition{Key: k, Position: i}
	}
	result[len(result)-1].Status = radasync.EditionCurrent
	return result
}

func TestPendingEditions(t *testing.T) {
	t.Parallel()

	t.Run("returns editions after the checkpoint", func(t *testing.T) {
		t.Parallel()

		list := editions("ed20010101", "ed20150304", "ed20200101")

		pending, err := radasync.PendingEditions(list, "20150304")

		require.NoError(t, err)
		assert.Equal(t, []string{"ed20200101"}, radasync.EditionKeys(pending))
	})

	t.Run("returns the whole list for an empty checkpoint", func(t *testing.T) {
		t.Parallel()

		list := editions("ed20010101", "ed20150304", "ed20200101")

		pending, err := radasync.PendingEditions(list, "")

		require.NoError(t, err)
		assert.Equal(t, list, pending)
	})

	t.Run("returns a single edition for an empty checkpoint", func(t *testing.T) {
		t.Parallel()

		pending, err := radasync.PendingEditions(editions("ed20010101"), "")

		require.NoError(t, err)
		assert.Equal(t, []string{"ed20010101"}, radasync.EditionKeys(pending))
	})

	t.Run("returns every suffix for every non-terminal checkpoint", func(t *testing.T) {
		t.Parallel()

		list := editions("ed19960628", "ed20040101", "ed20110930", "ed20160602", "ed20200101")
		for i := 0; i < len(list)-1; i++ {
			pending, err := radasync.PendingEditions(list, list[i].Key)
			require.NoError(t, err)
			assert.Equal(t, list[i+1:], pending, "checkpoint %s", list[i].Key)
		}
	})

	t.Run("does not alias the input slice", func(t *testing.T) {
		t.Parallel()

		list := editions("ed20010101", "ed20150304", "ed20200101")

		pending, err := radasync.PendingEditions(list, "ed20010101")
		require.NoError(t, err)
		pending[0].Key = "changed"

		assert.Equal(t, "ed20150304", list[1].Key)
	})

	t.Run("fails with ECHECKPOINT when the checkpoint is unknown", func(t *testing.T) {
		t.Parallel()

		_, err := radasync.PendingEditions(editions("ed20010101", "ed20150304"), "20990101")

		require.Error(t, err)
		assert.Equal(t, radasync.ECHECKPOINT, radasync.ErrorCode(err))
		assert.Contains(t, radasync.ErrorMessage(err), "20990101")
	})

	t.Run("fails with ECHECKPOINT for an empty listing", func(t *testing.T) {
		t.Parallel()

		_, err := radasync.PendingEditions(nil, "20150304")

		assert.Equal(t, radasync.ECHECKPOINT, radasync.ErrorCode(err))
	})

	t.Run("fails with ECHECKPOINT when the checkpoint matches several editions", func(t *testing.T) {
		t.Parallel()

		_, err := radasync.PendingEditions(editions("ed20150101", "ed20150304", "ed20200101"), "2015")

		require.Error(t, err)
		assert.Equal(t, radasync.ECHECKPOINT, radasync.ErrorCode(err))
		assert.Contains(t, radasync.ErrorMessage(err), "ambiguous")
	})

	t.Run("fails with EUPTODATE when the checkpoint is the latest edition", func(t *testing.T) {
		t.Parallel()

		_, err := radasync.PendingEditions(editions("ed20010101", "ed20150304", "ed20200101"), "20200101")

		require.Error(t, err)
		assert.Equal(t, radasync.EUPTODATE, radasync.ErrorCode(err))
	})

	t.Run("fails with EUPTODATE for a single edition already processed", func(t *testing.T) {
		t.Parallel()

		_, err := radasync.PendingEditions(editions("ed20010101"), "ed20010101")

		assert.Equal(t, radasync.EUPTODATE, radasync.ErrorCode(err))
	})
}
