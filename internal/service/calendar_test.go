package service

import (
	"context"
	"testing"
	"time"

	"github.com/PromoPilot/scheduler-service/internal/model"
	"github.com/PromoPilot/scheduler-service/internal/repository"
	"github.com/PromoPilot/scheduler-service/pkg/scheduleutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func scheduledPost(title, date, clock string) model.Post {
	return model.Post{
		Title:         title,
		Type:          model.ContentPost,
		Platforms:     []model.Platform{model.PlatformInstagram},
		ScheduledDate: date,
		ScheduledTime: clock,
	}
}

func TestBuildGrid(t *testing.T) {
	pivots := []time.Time{
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
	}

	t.Run("returns 42 consecutive cells starting on a Sunday", func(t *testing.T) {
		for _, pivot := range pivots {
			grid := BuildGrid(pivot, nil)
			require.Len(t, grid, 42)

			first, err := scheduleutil.ParseDate(grid[0].Date)
			require.NoError(t, err)
			require.Equal(t, time.Sunday, first.Weekday())

			for i := 1; i < len(grid); i++ {
				day, err := scheduleutil.ParseDate(grid[i].Date)
				require.NoError(t, err)
				require.Equal(t, first.AddDate(0, 0, i), day, "cell %d of pivot %s", i, pivot)
			}
		}
	})

	t.Run("flags exactly the pivot month's days as current", func(t *testing.T) {
		for _, pivot := range pivots {
			grid := BuildGrid(pivot, nil)

			current := 0
			for _, cell := range grid {
				day, err := scheduleutil.ParseDate(cell.Date)
				require.NoError(t, err)
				if cell.IsCurrentMonth {
					current++
					require.Equal(t, pivot.Month(), day.Month())
					require.Equal(t, pivot.Year(), day.Year())
				}
			}

			daysInMonth := scheduleutil.FirstOfMonth(pivot).AddDate(0, 1, -1).Day()
			require.Equal(t, daysInMonth, current)
		}
	})

	t.Run("places a scheduled post in exactly one cell", func(t *testing.T) {
		posts := []model.Post{scheduledPost("One", "2025-01-25", "09:00")}
		grid := BuildGrid(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), posts)

		cellsWithPost := 0
		for _, cell := range grid {
			if len(cell.Posts) > 0 {
				cellsWithPost++
				require.Equal(t, "2025-01-25", cell.Date)
			}
		}
		require.Equal(t, 1, cellsWithPost)
	})

	t.Run("omits unscheduled posts", func(t *testing.T) {
		posts := []model.Post{{Title: "Unscheduled", Type: model.ContentPost}}
		for _, cell := range BuildGrid(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), posts) {
			require.Empty(t, cell.Posts)
		}
	})

	t.Run("orders a cell's posts by time ascending", func(t *testing.T) {
		posts := []model.Post{
			scheduledPost("Afternoon", "2025-01-25", "14:30"),
			scheduledPost("Morning", "2025-01-25", "09:00"),
		}
		grid := BuildGrid(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), posts)

		cell := grid[27]
		require.Equal(t, "2025-01-25", cell.Date)
		require.Len(t, cell.Posts, 2)
		require.Equal(t, "Morning", cell.Posts[0].Title)
		require.Equal(t, "Afternoon", cell.Posts[1].Title)
	})

	t.Run("preserves insertion order for equal times", func(t *testing.T) {
		posts := []model.Post{
			scheduledPost("First", "2025-01-25", "09:00"),
			scheduledPost("Second", "2025-01-25", "09:00"),
			scheduledPost("Third", "2025-01-25", "09:00"),
		}
		grid := BuildGrid(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), posts)

		cell := grid[27]
		require.Len(t, cell.Posts, 3)
		require.Equal(t, "First", cell.Posts[0].Title)
		require.Equal(t, "Second", cell.Posts[1].Title)
		require.Equal(t, "Third", cell.Posts[2].Title)
	})
}

func newTestCalendar(now time.Time) *calendarService {
	s := &calendarService{
		logger: zap.NewNop(),
		repo:   repository.New(zap.NewNop()),
		now:    func() time.Time { return now },
	}
	s.pivot = scheduleutil.FirstOfMonth(now)
	return s
}

func TestCalendarNavigation(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("moves the pivot one month at a time", func(t *testing.T) {
		cal := newTestCalendar(now)
		require.Equal(t, "2025-07", cal.Next(ctx).Pivot)
		require.Equal(t, "2025-08", cal.Next(ctx).Pivot)
		require.Equal(t, "2025-07", cal.Prev(ctx).Pivot)
	})

	t.Run("clamps forward navigation to three months out", func(t *testing.T) {
		cal := newTestCalendar(now)
		for i := 0; i < 3; i++ {
			cal.Next(ctx)
		}
		resp := cal.Next(ctx)
		require.Equal(t, "2025-09", resp.Pivot)
		require.False(t, resp.CanGoNext)
		require.True(t, resp.CanGoPrev)
	})

	t.Run("clamps backward navigation to three months back", func(t *testing.T) {
		cal := newTestCalendar(now)
		for i := 0; i < 3; i++ {
			cal.Prev(ctx)
		}
		resp := cal.Prev(ctx)
		require.Equal(t, "2025-03", resp.Pivot)
		require.False(t, resp.CanGoPrev)
		require.True(t, resp.CanGoNext)
	})

	t.Run("clamps across year boundaries", func(t *testing.T) {
		cal := newTestCalendar(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))
		for i := 0; i < 4; i++ {
			cal.Prev(ctx)
		}
		require.Equal(t, "2024-10", cal.Grid(ctx).Pivot)
	})

	t.Run("grid reflects stored posts", func(t *testing.T) {
		cal := newTestCalendar(now)
		_, err := cal.repo.Memory.Post.Create(ctx, scheduledPost("June", "2025-06-20", "10:00"))
		require.NoError(t, err)

		var found bool
		for _, cell := range cal.Grid(ctx).Days {
			if cell.Date == "2025-06-20" {
				require.Len(t, cell.Posts, 1)
				found = true
			}
		}
		require.True(t, found)
	})
}
