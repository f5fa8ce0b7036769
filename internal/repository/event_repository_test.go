package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketee/internal/model"
	"ticketee/internal/repository"
	apperrors "ticketee/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_Create(t *testing.T) {
	repo := repository.NewEventRepository(testDB)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)

		location := "Grand Ballroom"
		start := time.Date(2030, 4, 1, 19, 0, 0, 0, time.UTC)
		event := &model.Event{
			CreatedBy:    uuid.New(),
			Title:        "Spring Gala",
			Location:     &location,
			StartDate:    start,
			MaxAttendees: intPtr(300),
			IsPublished:  true,
		}

		created, err := repo.Create(ctx, event)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, "Spring Gala", created.Title)
		assert.True(t, created.StartDate.Equal(start))
		assert.Equal(t, []string{}, created.MediaURLs)
		assert.Nil(t, created.CoverImageURL)
		assert.Equal(t, 300, *created.MaxAttendees)
		assert.NotZero(t, created.CreatedAt)
	})

	t.Run("Failed - check constraint", func(t *testing.T) {
		setupTestWithTruncate(t)

		_, err := repo.Create(ctx, &model.Event{CreatedBy: uuid.New(), Title: "ab", StartDate: time.Now()})

		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr))
		assert.Equal(t, "23514", pgErr.Code)
	})
}

func TestEventRepository_List(t *testing.T) {
	repo := repository.NewEventRepository(testDB)
	ctx := context.Background()

	t.Run("EmptyList", func(t *testing.T) {
		setupTestWithTruncate(t)

		events, err := repo.List(ctx, true)

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("OrderByCreatedAtDesc", func(t *testing.T) {
		setupTestWithTruncate(t)
		owner := uuid.New()

		id1 := createTestEvent(t, "Event A", owner, true)
		id2 := createTestEvent(t, "Event B", owner, false)
		id3 := createTestEvent(t, "Event C", owner, true)

		all, err := repo.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []uuid.UUID{id3, id2, id1}, []uuid.UUID{all[0].ID, all[1].ID, all[2].ID})

		published, err := repo.List(ctx, true)
		require.NoError(t, err)
		require.Len(t, published, 2)
		assert.Equal(t, id3, published[0].ID)
		assert.Equal(t, id1, published[1].ID)
	})
}

func TestEventRepository_FindByID(t *testing.T) {
	repo := repository.NewEventRepository(testDB)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)
		owner := uuid.New()
		id := createTestEvent(t, "Spring Gala", owner, true)

		event, err := repo.FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, owner, event.CreatedBy)
		assert.True(t, event.IsOwnedBy(owner))
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		setupTestWithTruncate(t)

		_, err := repo.FindByID(ctx, uuid.New())

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_Update(t *testing.T) {
	repo := repository.NewEventRepository(testDB)
	ctx := context.Background()

	t.Run("Success - media", func(t *testing.T) {
		setupTestWithTruncate(t)
		id := createTestEvent(t, "Spring Gala", uuid.New(), true)

		urls := []string{"https://cdn.test/a.jpg", "https://cdn.test/b.png"}
		cover := urls[0]
		updated, err := repo.Update(ctx, id, model.UpdateEventParams{MediaURLs: &urls, CoverImageURL: &cover})

		require.NoError(t, err)
		assert.Equal(t, urls, updated.MediaURLs)
		assert.Equal(t, cover, *updated.CoverImageURL)
		assert.Equal(t, "Spring Gala", updated.Title)
	})

	t.Run("Failed - empty params", func(t *testing.T) {
		setupTestWithTruncate(t)

		_, err := repo.Update(ctx, uuid.New(), model.UpdateEventParams{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		setupTestWithTruncate(t)
		title := "Summer Gala"

		_, err := repo.Update(ctx, uuid.New(), model.UpdateEventParams{Title: &title})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_Delete(t *testing.T) {
	repo := repository.NewEventRepository(testDB)
	ctx := context.Background()

	setupTestWithTruncate(t)
	id := createTestEvent(t, "Spring Gala", uuid.New(), true)
	createTestTicketType(t, id, "GA", intPtr(10))

	require.NoError(t, repo.Delete(ctx, id))

	_, err := repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id), apperrors.ErrEventNotFound)
}
