package inmemory

import (
	"context"
	"testing"

	"github.com/PromoPilot/scheduler-service/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo() Post {
	return newPostRepo(zap.NewNop())
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	t.Run("assigns id and creation time", func(t *testing.T) {
		created, err := repo.Create(ctx, model.Post{
			Title:     "Launch teaser",
			Type:      model.ContentPost,
			Platforms: []model.Platform{model.PlatformInstagram},
		})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)
		require.False(t, created.CreatedAt.IsZero())
	})

	t.Run("defaults the clock time for a scheduled post", func(t *testing.T) {
		created, err := repo.Create(ctx, model.Post{
			Title:         "Scheduled teaser",
			Type:          model.ContentPost,
			Platforms:     []model.Platform{model.PlatformInstagram},
			ScheduledDate: "2025-01-25",
		})
		require.NoError(t, err)
		require.Equal(t, "09:00", created.ScheduledTime)
	})

	t.Run("keeps an explicit clock time", func(t *testing.T) {
		created, err := repo.Create(ctx, model.Post{
			Title:         "Evening teaser",
			Type:          model.ContentPost,
			Platforms:     []model.Platform{model.PlatformInstagram},
			ScheduledDate: "2025-01-25",
			ScheduledTime: "18:30",
		})
		require.NoError(t, err)
		require.Equal(t, "18:30", created.ScheduledTime)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	created, err := repo.Create(ctx, model.Post{
		Title:     "Original",
		Type:      model.ContentPost,
		Platforms: []model.Platform{model.PlatformInstagram},
	})
	require.NoError(t, err)

	t.Run("merges only the provided fields", func(t *testing.T) {
		title := "Renamed"
		updated, err := repo.Update(ctx, created.ID, model.PostPatch{Title: &title})
		require.NoError(t, err)
		require.Equal(t, "Renamed", updated.Title)
		require.Equal(t, created.Platforms, updated.Platforms)
		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("returns an error for an unknown id", func(t *testing.T) {
		title := "Ghost"
		_, err := repo.Update(ctx, uuid.New(), model.PostPatch{Title: &title})
		require.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	created, err := repo.Create(ctx, model.Post{
		Title:     "Disposable",
		Type:      model.ContentPost,
		Platforms: []model.Platform{model.PlatformInstagram},
	})
	require.NoError(t, err)

	t.Run("removes the post", func(t *testing.T) {
		repo.Delete(ctx, created.ID)
		_, err := repo.FindByID(ctx, created.ID)
		require.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("is idempotent", func(t *testing.T) {
		repo.Delete(ctx, created.ID)
		repo.Delete(ctx, uuid.New())
		require.Empty(t, repo.FindAll(ctx))
	})
}

func TestMoveToDate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	created, err := repo.Create(ctx, model.Post{
		Title:         "Movable",
		Type:          model.ContentReel,
		Platforms:     []model.Platform{model.PlatformInstagram, model.PlatformFacebook},
		ScheduledTime: "14:30",
	})
	require.NoError(t, err)

	t.Run("changes only the scheduled date", func(t *testing.T) {
		moved, err := repo.MoveToDate(ctx, created.ID, "2025-01-25")
		require.NoError(t, err)
		require.Equal(t, "2025-01-25", moved.ScheduledDate)
		require.Equal(t, "14:30", moved.ScheduledTime)
		require.Equal(t, created.Platforms, moved.Platforms)
		require.Equal(t, created.Title, moved.Title)
	})

	t.Run("is idempotent for the same date", func(t *testing.T) {
		once, err := repo.MoveToDate(ctx, created.ID, "2025-02-01")
		require.NoError(t, err)
		twice, err := repo.MoveToDate(ctx, created.ID, "2025-02-01")
		require.NoError(t, err)
		require.Equal(t, once, twice)
	})

	t.Run("defaults the clock time when none was set", func(t *testing.T) {
		unscheduled, err := repo.Create(ctx, model.Post{
			Title:     "No time yet",
			Type:      model.ContentPost,
			Platforms: []model.Platform{model.PlatformTwitter},
		})
		require.NoError(t, err)
		require.Empty(t, unscheduled.ScheduledTime)

		moved, err := repo.MoveToDate(ctx, unscheduled.ID, "2025-01-25")
		require.NoError(t, err)
		require.Equal(t, "09:00", moved.ScheduledTime)
	})

	t.Run("returns an error for an unknown id", func(t *testing.T) {
		_, err := repo.MoveToDate(ctx, uuid.New(), "2025-01-25")
		require.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestPartition(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	scheduled, err := repo.Create(ctx, model.Post{
		Title:         "Scheduled",
		Type:          model.ContentPost,
		Platforms:     []model.Platform{model.PlatformInstagram},
		ScheduledDate: "2025-01-10",
	})
	require.NoError(t, err)

	unscheduled, err := repo.Create(ctx, model.Post{
		Title:     "Unscheduled",
		Type:      model.ContentPost,
		Platforms: []model.Platform{model.PlatformInstagram},
	})
	require.NoError(t, err)

	require.Len(t, repo.FindAll(ctx), 2)

	scheduledPosts := repo.FindScheduled(ctx)
	require.Len(t, scheduledPosts, 1)
	require.Equal(t, scheduled.ID, scheduledPosts[0].ID)

	unscheduledPosts := repo.FindUnscheduled(ctx)
	require.Len(t, unscheduledPosts, 1)
	require.Equal(t, unscheduled.ID, unscheduledPosts[0].ID)
}
