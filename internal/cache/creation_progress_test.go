package cache

import (
	"context"
	"testing"
	"ticketee/internal/model"
	apperrors "ticketee/pkg/app_errors"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressStore(t *testing.T) {
	ctx := context.Background()
	mr, rdb := setupTestRdb(t)
	store := NewProgressStore(rdb, time.Minute)

	progress := model.NewCreationProgress(uuid.New())
	progress.OwnerID = uuid.New()
	_, err := progress.Transition(model.StepEvent, model.StepProcessing, "")
	require.NoError(t, err)
	_, err = progress.Transition(model.StepEvent, model.StepError, "You do not have permission to create events")
	require.NoError(t, err)

	t.Run("Success - round trip", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, progress))

		got, err := store.Get(ctx, progress.SubmissionID)

		require.NoError(t, err)
		assert.Equal(t, progress.SubmissionID, got.SubmissionID)
		assert.Equal(t, progress.OwnerID, got.OwnerID)
		assert.Equal(t, model.StepError, got.State(model.StepEvent).Status)
		assert.Equal(t, "You do not have permission to create events", got.State(model.StepEvent).Error)
		assert.Equal(t, model.StepPending, got.State(model.StepMedia).Status)
	})

	t.Run("Failed - expired", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, progress))
		mr.FastForward(2 * time.Minute)

		_, err := store.Get(ctx, progress.SubmissionID)

		assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)
	})

	t.Run("Failed - unknown submission", func(t *testing.T) {
		_, err := store.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)
	})
}
